package bts

import (
	"github.com/c360studio/lexmerge/registry"
	"github.com/c360studio/lexmerge/vocabulary/lexicon"
)

// Period is a historical period whose date range the dump does not provide.
type Period struct {
	Label      string
	Start, End string
}

// missingDateRanges holds curated boundaries keyed by thesaurus record id.
// Values keep the padding they were catalogued with.
var missingDateRanges = map[string]Period{
	"MXWX4WG43ZHI7D4RLTGK3IBGXY": {"9 = Datierungen", "-5500", "  900"},
	"FKLXKTC5RJFSZCBDU5HWK6KHGU": {"(unbekannt)", "-5500", "  900"},
	"GTIHALKZWJFTNCLZ3ITXK7HBXA": {"(unbestimmt)", "-5500", "  900"},
	"DUVGWT7GSRCKDM5LFTGU6MZ3GY": {"(Epochen und Dynastien)", "-5500", "  641"},
	"6YAAR2WRI5F6BLP6YMW3G67P6Q": {"Neolithikum vor der Badari-Kultur", "-5500", "-5000"},
	"FMNBFXWGA5C2TEXFRDXOGXBEPE": {"Badari-Kultur", "-5000", "-3900"},
	"P5F2WOP6YZGBHK5KCSCP2UXJHM": {"Naqada I", "-3900", "-3650"},
	"WLIRCHQ3DRF4ZOTIREDVCPKC5A": {"Naqada II", "-3650", "-3300"},
	"IPXSCTKV4REDHIXWTZWDXVXJWY": {"Naqada III", "-3300", "-3151"},
	"MM4QYACJOJCCLJWBD6VAX2FLKE": {"Mittleres Reich", "-2135", "-1794"},
	"JS32JKX2CNG25GZ3B6MGYMDU4I": {"Dritte Zwischenzeit", "-1070", " -656"},
	"HYYNMJRFTVFIHB7JUA6M2QW3LQ": {"Makedonen, Ptolemäer", " -332", "  -30"},
	"D3R5CH5NZBDA7IZMCKKJPWYZKU": {"(Jahrhunderte v.Chr.)", " -900", "   -1"},
	"FHZEINDCEJAOTHIVC35NYGMC2Q": {"(Jahrhunderte n.Chr.)", "    1", "  900"},
}

// DateRangeOverride returns the curated period for id.
func DateRangeOverride(id string) (Period, bool) {
	p, ok := missingDateRanges[id]
	return p, ok
}

// FillMissingDateRanges sets the curated boundaries of id for every boundary
// the dump left empty. Boundaries already present are kept.
func FillMissingDateRanges(id string, bag registry.Bag, _ *registry.Registry) (registry.Bag, error) {
	p, ok := DateRangeOverride(id)
	if !ok {
		return bag, nil
	}
	dates := bag.Ensure(lexicon.PropertyDates)
	if len(dates.Get(lexicon.Beginning)) == 0 {
		dates.Set(lexicon.Beginning, []string{p.Start})
	}
	if len(dates.Get(lexicon.End)) == 0 {
		dates.Set(lexicon.End, []string{p.End})
	}
	return bag, nil
}
