package model

import (
	"fmt"
	"strings"
)

// MaxStoryWords is the longest user story accepted before a length defect
const MaxStoryWords = 70

// User story messages
const (
	MsgMissingRole        = "The user story is missing an entity that is requesting the feature."
	MsgMissingMeans       = "The user story is missing a feature being requested."
	MsgMissingEnds        = "The user story is missing a reason for the feature being requested."
	MsgMeansNotStartingI  = "The first word of the means should be 'I'"
	MsgBadOrdering        = "The user story should be ordered as follows: entity requesting the feature, the feature being requested, the reason for the feature being requested."
	MsgRoleNotEndingNoun  = "The entity should have a noun as the last word"
	MsgMeansMissingVerb   = "The feature should involve an action."
	MsgMeansMissingNoun   = "The feature should involve an object."
	MsgEndsMissingWords   = "There needs to be reasoning for the feature"
	MsgMoreThanOneRole    = "There is more than one entity requesting the feature."
	MsgMoreThanOneMeans   = "There is more than one feature being requested."
	MsgMoreThanOneEnds    = "There is more than one reasoning for the feature."
	MsgListOfVerbsInMeans = "There is a list of verbs, indicating more than one feature is being requested."
	MsgSeparatingPunct    = "There should not be text after separating punctuation."
	MsgBracketsInStory    = "There is information inside brackets, if this is necessary information then consider splitting the user story. Otherwise you should remove the brackets."
	MsgNotUniform         = "The user story should be in the format 'As a <role> I want <feature> so that <rationale>'"
)

// MsgTooLong is the length defect for stories over MaxStoryWords
var MsgTooLong = fmt.Sprintf("The user story should be no more than %d words long", MaxStoryWords)

// Acceptance criteria messages
const (
	MsgMissingContext           = "The AC needs to have a GIVEN clause"
	MsgMissingEvent             = "The AC needs to have a WHEN clause"
	MsgMissingOutcome           = "The AC needs to have a THEN clause"
	MsgOutOfOrder               = "The required clauses of the AC are out of order, consider splitting the AC"
	MsgContextMissingNounOrVerb = "The GIVEN chunk of the AC should have at least one verb and at least one noun"
	MsgEventMissingNounOrVerb   = "The WHEN chunk of the AC should have at least one verb and at least one noun"
	MsgOutcomeMissingNounOrVerb = "The THEN chunk of the AC should have at least one verb and at least one noun"
	MsgMoreThanOneContext       = "The AC should only have one GIVEN clause"
	MsgMoreThanOneEvent         = "The AC should only have one WHEN clause"
	MsgMoreThanOneOutcome       = "The AC should only have one THEN clause"
	MsgACSeparatingPunct        = "The AC should not have separating punctuation, ie. it should only be once sentence"
	MsgInfoInBrackets           = "The AC should not have more information than necessary, ie. information in brackets. If the information in the brackets is necessary, then you should expand out the brackets."
	MsgListInAC                 = "There is a list in the AC. If this is a OR list, then you should split up the AC. If it is an AND list, then you should split it into separate AND clauses."
)

// MsgDuplicates names duplicated ACs by their 1-based position, matching the "AC n" titles
func MsgDuplicates(indices []int) string {
	numbers := make([]string, len(indices))
	for i, idx := range indices {
		numbers[i] = fmt.Sprintf("%d", idx+1)
	}
	return fmt.Sprintf("The following ACs are duplicates: [%s]", strings.Join(numbers, ", "))
}

// Ambiguity messages

func MsgSuperlatives(words []string) string {
	return fmt.Sprintf("You have used the following superlatives: %s. These can introduce ambiguity as they create subjectivity.", FormatTerms(words))
}

func MsgComparatives(words []string) string {
	return fmt.Sprintf("You have used the following comparatives: %s. These can introduce ambiguity as they create subjectivity.", FormatTerms(words))
}

func MsgVagueTerms(words []string) string {
	return fmt.Sprintf("You have used the following terms: %s. These can introduce ambiguity as they create some vagueness for the reader.", FormatTerms(words))
}

func MsgEscapeClauses(words []string) string {
	return fmt.Sprintf("You have used the following escape clauses: %s. These can introduce ambiguity as they show a lack of commitment to the idea presented.", FormatTerms(words))
}

func MsgAnaphora(words []string) string {
	return fmt.Sprintf("This contains anaphora, which is using pronouns or adjectives in place of an explicit reference to something. Consider replacing the following words with explicit references: %s. When these are used, it is ambiguous to the reader what is being referenced.", FormatTerms(words))
}

func MsgQuantifiers(words []string) string {
	return fmt.Sprintf("You have used the following quantifiers: %s. These introduce ambiguity as they create uncertainty about the scope of what is being described.", FormatTerms(words))
}

func MsgWeakVerbs(words []string) string {
	return fmt.Sprintf("You have used the following weak verbs: %s. These introduce ambiguity as they create uncertainty.", FormatTerms(words))
}

// FormatTerms renders matched terms as ['a', 'b']
func FormatTerms(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
