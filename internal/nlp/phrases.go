package nlp

import "strings"

// NounPhrases chunks tokens with the grammar DT? JJ* NN.*+ and returns
// each phrase as its words joined by single spaces. Matching is greedy
// and left to right.
func NounPhrases(tokens []Token) []string {
	var phrases []string
	for i := 0; i < len(tokens); {
		j := i
		if tokens[j].Tag == "DT" {
			j++
		}
		for j < len(tokens) && tokens[j].Tag == "JJ" {
			j++
		}
		k := j
		for k < len(tokens) && strings.HasPrefix(tokens[k].Tag, "NN") {
			k++
		}
		if k == j {
			i++
			continue
		}
		phrases = append(phrases, strings.Join(Words(tokens[i:k]), " "))
		i = k
	}
	return phrases
}
