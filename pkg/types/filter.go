package types

// Filter carries the flat list-query parameters: equality filters on
// allow-listed columns plus limit/offset. Limit 0 means no limit.
type Filter struct {
	Filter map[string]interface{}
	Limit  int
	Offset int
}
