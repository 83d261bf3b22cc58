package classify

import "regexp"

var (
	// cryingPattern matches maximal runs of the crying jamo; one run
	// counts as one expression regardless of length.
	cryingPattern = regexp.MustCompile(`[ㅜㅠ]+`)

	// laughingPattern matches runs of laughing jamo or one of the fixed
	// onomatopoeia words; each match counts as one expression.
	laughingPattern = regexp.MustCompile(`ㅋ+|ㅎ+|ㅊ+|하하|호호|헤헤|히히|크크|킥킥`)
)

// CountCrying counts crying expressions in the body.
func CountCrying(body string) int {
	return len(cryingPattern.FindAllString(body, -1))
}

// CountLaughing counts laughing expressions in the body.
func CountLaughing(body string) int {
	return len(laughingPattern.FindAllString(body, -1))
}
