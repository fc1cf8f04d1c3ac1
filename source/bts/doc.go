// Package bts reads lexical database dumps and extracts property bags from
// their records.
//
// A dump is a ZIP archive holding one JSON member per vocabulary, each a JSON
// array of records keyed by "_id":
//
//	vocabulary.zip
//	  aaew_wlist.json   lemma list
//	  aaew_ths.json     thesaurus
//
// Records are accessed field by field with gjson paths. Extractors never fail
// on a malformed record: items missing a qualifier or a value are skipped.
//
// Thesaurus date records carry their boundaries in a nested passport tree:
//
//	passport
//	  thesaurus_date
//	    main_group
//	      beginning  value=-250
//	      end        value=-201
//
// FillMissingDateRanges supplies boundaries for a fixed set of historical
// period records that the dump leaves without dates.
package bts
