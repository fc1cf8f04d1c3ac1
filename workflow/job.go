// Package workflow binds a dump vocabulary, its extraction and repair, and a
// merge into a target document into runnable jobs.
package workflow

import (
	"fmt"
	"slices"

	"github.com/c360studio/lexmerge/merge"
	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/source/bts"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
)

// Patch step names.
const (
	StepVerify    = "verify"
	StepMirror    = "mirror"
	StepFillDates = "fill-dates"
)

// Element kinds of the target documents.
const (
	KindEntry    = "entry"
	KindCategory = "category"
)

// Source names the dump vocabulary a job reads.
type Source struct {
	Archive string `json:"archive" yaml:"archive"`
	Vocab   string `json:"vocab" yaml:"vocab"`
}

// Target names the document a job writes and the element kind it matches
// registry ids against.
type Target struct {
	File string `json:"file" yaml:"file"`
	Kind string `json:"kind" yaml:"kind"`
}

// Job describes one merge run.
type Job struct {
	Name       string
	Source     Source
	Target     Target
	Extractors []registry.Extractor[bts.Record]
	Steps      []string
	Property   string
	Inserter   merge.Inserter
}

// Validate checks that the job is complete and its steps are ordered.
func (j Job) Validate() error {
	switch {
	case j.Source.Archive == "":
		return &ValidationError{Field: "source.archive", Message: "archive is required"}
	case j.Source.Vocab == "":
		return &ValidationError{Field: "source.vocab", Message: "vocab is required"}
	case j.Target.File == "":
		return &ValidationError{Field: "target.file", Message: "file is required"}
	case j.Target.Kind == "":
		return &ValidationError{Field: "target.kind", Message: "kind is required"}
	case len(j.Extractors) == 0:
		return &ValidationError{Field: "extractors", Message: "at least one extractor is required"}
	case j.Property == "":
		return &ValidationError{Field: "property", Message: "property is required"}
	case j.Inserter == nil:
		return &ValidationError{Field: "inserter", Message: "inserter is required"}
	}
	return ValidateSteps(j.Steps)
}

// ValidateSteps rejects unknown step names and a mirror step that is not
// preceded by a verify step.
func ValidateSteps(steps []string) error {
	verified := false
	for _, s := range steps {
		switch s {
		case StepVerify:
			verified = true
		case StepMirror:
			if !verified {
				return ErrPatchOrder
			}
		case StepFillDates:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownStep, s)
		}
	}
	return nil
}

// Predefined job names.
const (
	JobTranslations = "add-translations"
	JobRelations    = "add-relations"
	JobDates        = "add-dates"
)

// LemmaTranslations copies lemma translations into dictionary entries.
func LemmaTranslations(archive, file string) Job {
	return Job{
		Name:       JobTranslations,
		Source:     Source{Archive: archive, Vocab: bts.VocabLemmata},
		Target:     Target{File: file, Kind: KindEntry},
		Extractors: []registry.Extractor[bts.Record]{bts.Translations},
		Property:   lexicon.PropertyTranslations,
		Inserter:   merge.Translations{},
	}
}

// LemmaRelations copies the repaired lemma relation graph into dictionary
// entries.
func LemmaRelations(archive, file string) Job {
	return Job{
		Name:       JobRelations,
		Source:     Source{Archive: archive, Vocab: bts.VocabLemmata},
		Target:     Target{File: file, Kind: KindEntry},
		Extractors: []registry.Extractor[bts.Record]{bts.Relations},
		Steps:      []string{StepVerify, StepMirror},
		Property:   lexicon.PropertyRelations,
		Inserter:   merge.Relations{},
	}
}

// ThesaurusDates copies thesaurus date ranges into categories, back-filling
// the curated periods the dump leaves open.
func ThesaurusDates(archive, file string) Job {
	return Job{
		Name:       JobDates,
		Source:     Source{Archive: archive, Vocab: bts.VocabThesaurus},
		Target:     Target{File: file, Kind: KindCategory},
		Extractors: []registry.Extractor[bts.Record]{bts.ThesaurusDates},
		Steps:      []string{StepFillDates},
		Property:   lexicon.PropertyDates,
		Inserter:   merge.DateBounds{},
	}
}

var predefined = map[string]func(archive, file string) Job{
	JobTranslations: LemmaTranslations,
	JobRelations:    LemmaRelations,
	JobDates:        ThesaurusDates,
}

// Lookup returns the predefined job called name.
func Lookup(name, archive, file string) (Job, error) {
	build, ok := predefined[name]
	if !ok {
		return Job{}, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}
	return build(archive, file), nil
}

// Names returns the predefined job names in sorted order.
func Names() []string {
	names := make([]string, 0, len(predefined))
	for name := range predefined {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
