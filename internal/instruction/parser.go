// internal/instruction/parser.go
package instruction

import (
	"regexp"
	"strconv"
	"strings"
)

// tokenRegex matches one whole token. The PLANTMOW alternative is listed
// first so that it wins over its own PLANT prefix.
var tokenRegex = regexp.MustCompile(`^(PLANTMOW|PLANT)?([a-s])([a-y])(\d{1,2})$`)

// actionFromPrefix maps a matched prefix to its action. An empty prefix mows.
func actionFromPrefix(prefix string) Action {
	switch prefix {
	case "PLANTMOW":
		return PlantMow
	case "PLANT":
		return Plant
	default:
		return Mow
	}
}

// Parse creates an Instruction from a single token.
func Parse(token string) (Instruction, error) {
	if token == "" {
		return Instruction{}, &ParseError{Token: token, Reason: "token cannot be empty"}
	}

	matches := tokenRegex.FindStringSubmatch(token)
	if matches == nil {
		return Instruction{}, &ParseError{Token: token, Reason: "does not match [PLANTMOW|PLANT]<a-s><a-y><diameter>"}
	}

	diameter, err := strconv.Atoi(matches[4])
	if err != nil {
		// Unreachable due to regex `\d{1,2}`
		return Instruction{}, &ParseError{Token: token, Reason: "diameter is not a valid number", Err: err}
	}
	if diameter < 1 {
		return Instruction{}, &ParseError{Token: token, Reason: "diameter must be at least 1"}
	}

	return Instruction{
		Action:   actionFromPrefix(matches[1]),
		Col:      int(matches[2][0] - 'a'),
		Row:      int(matches[3][0] - 'a'),
		Diameter: diameter,
	}, nil
}

// Tokenize splits an instruction line on any run of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// ParseLine parses every token of a line. Valid instructions keep their
// input order; each invalid token contributes one error and is otherwise
// skipped.
func ParseLine(line string) ([]Instruction, []error) {
	var (
		instructions []Instruction
		errs         []error
	)
	for _, token := range Tokenize(line) {
		in, err := Parse(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		instructions = append(instructions, in)
	}
	return instructions, errs
}
