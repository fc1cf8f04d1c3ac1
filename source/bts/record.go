package bts

import "github.com/tidwall/gjson"

// Record is a single dump record.
type Record struct {
	raw gjson.Result
}

// NewRecord parses a JSON object into a record.
func NewRecord(json string) Record {
	return Record{raw: gjson.Parse(json)}
}

// ID returns the record's "_id", or "" when absent.
func (r Record) ID() string {
	return r.raw.Get("_id").String()
}

// Type returns the record's "type" field.
func (r Record) Type() string {
	return r.raw.Get("type").String()
}

// Get returns the field at a gjson path.
func (r Record) Get(path string) gjson.Result {
	return r.raw.Get(path)
}
