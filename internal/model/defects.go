package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Category names a family of quality defects
type Category string

const (
	CategoryWellFormed   Category = "Well-formed"
	CategoryAtomic       Category = "Atomic"
	CategoryMinimal      Category = "Minimal"
	CategoryFullSentence Category = "Full sentence"
	CategoryUniform      Category = "Uniform"
	CategoryLength       Category = "Length"
	CategoryIntegrous    Category = "Integrous"
	CategoryEssential    Category = "Essential"
	CategorySingular     Category = "Singular"
	CategoryUnique       Category = "Unique"
	CategoryAmbiguity    Category = "Ambiguity"
)

// Categories lists every category in report order
var Categories = []Category{
	CategoryWellFormed,
	CategoryAtomic,
	CategoryMinimal,
	CategoryFullSentence,
	CategoryUniform,
	CategoryLength,
	CategoryIntegrous,
	CategoryEssential,
	CategorySingular,
	CategoryUnique,
	CategoryAmbiguity,
}

// Defect groups every message reported for one category
type Defect struct {
	Title        Category `json:"title" yaml:"title"`
	Descriptions []string `json:"descriptions" yaml:"descriptions"`
}

// Defects is an append-only, insertion-ordered map of category to messages.
// The zero value is ready to use.
type Defects struct {
	order    []Category
	messages map[Category][]string
}

// Add appends a message to a category, creating the category on first use
func (d *Defects) Add(category Category, message string) {
	if d.messages == nil {
		d.messages = make(map[Category][]string)
	}
	if _, ok := d.messages[category]; !ok {
		d.order = append(d.order, category)
	}
	d.messages[category] = append(d.messages[category], message)
}

// Has reports whether any message was recorded for the category
func (d *Defects) Has(category Category) bool {
	_, ok := d.messages[category]
	return ok
}

// Contains reports whether the exact message was recorded for the category
func (d *Defects) Contains(category Category, message string) bool {
	for _, m := range d.messages[category] {
		if m == message {
			return true
		}
	}
	return false
}

// Get returns the messages of a category in detection order
func (d *Defects) Get(category Category) []string {
	return d.messages[category]
}

// Categories returns the recorded categories in detection order
func (d *Defects) Categories() []Category {
	return d.order
}

// Len returns the number of categories with at least one message
func (d *Defects) Len() int {
	return len(d.order)
}

// Count returns the total number of messages across all categories
func (d *Defects) Count() int {
	n := 0
	for _, msgs := range d.messages {
		n += len(msgs)
	}
	return n
}

// List flattens the map into ordered Defect entries
func (d *Defects) List() []Defect {
	list := make([]Defect, 0, len(d.order))
	for _, c := range d.order {
		list = append(list, Defect{Title: c, Descriptions: d.messages[c]})
	}
	return list
}

// MarshalJSON keeps detection order in the output
func (d Defects) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.List())
}

// MarshalYAML keeps detection order in the output
func (d Defects) MarshalYAML() (interface{}, error) {
	return d.List(), nil
}

var (
	_ json.Marshaler = Defects{}
	_ yaml.Marshaler = Defects{}
)
