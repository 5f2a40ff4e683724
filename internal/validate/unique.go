package validate

import (
	"strings"

	"github.com/ppiankov/storylint/internal/model"
)

// Unique groups criteria whose text matches once case and whitespace are
// normalised. Groups come in order of first occurrence and list every
// zero-based batch position. Texts that occur once are left out.
func Unique(batch []*model.AcceptanceCriteria) []model.DuplicateGroup {
	positions := make(map[string][]int)
	var order []string

	for i, ac := range batch {
		key := normaliseCriteria(ac.LowerText())
		if _, seen := positions[key]; !seen {
			order = append(order, key)
		}
		positions[key] = append(positions[key], i)
	}

	var groups []model.DuplicateGroup
	for _, key := range order {
		if len(positions[key]) > 1 {
			groups = append(groups, model.DuplicateGroup{Text: key, Indices: positions[key]})
		}
	}
	return groups
}

// UniqueBlock renders the duplicate groups as the trailing block of a
// criteria report, or nil when every criterion is unique
func UniqueBlock(batch []*model.AcceptanceCriteria) *model.UniqueBlock {
	groups := Unique(batch)
	if len(groups) == 0 {
		return nil
	}

	block := &model.UniqueBlock{
		Title:  model.CategoryUnique,
		Groups: groups,
	}
	for _, g := range groups {
		block.Defects = append(block.Defects, model.MsgDuplicates(g.Indices))
	}
	return block
}

func normaliseCriteria(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
