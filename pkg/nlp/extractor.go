package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// cityVocabulary lists every municipality the datasets cover. Extraction
// walks this slice in order, so an utterance naming two cities resolves
// to whichever appears first here, not first in the text.
var cityVocabulary = []string{
	"san pedro",
	"binan",
	"cabuyao",
	"calamba",
	"sta rosa",
	"los baños",
	"victoria",
	"bay",
	"kalayaan",
	"santa cruz",
	"pagsanjan",
}

var digitPattern = regexp.MustCompile(`\b\d+\b`)

// numberWords covers the spelled-out quantities users actually type.
// Compounds like "twenty five" accumulate; "hundred" multiplies.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100,
}

// ExtractCity returns the first vocabulary city contained in the text,
// or an empty string when none matches.
func ExtractCity(text string) string {
	lowered := strings.ToLower(text)
	for _, city := range cityVocabulary {
		if strings.Contains(lowered, city) {
			return city
		}
	}
	return ""
}

// ExtractLocation returns the first of the given location names whose
// lowercased form occurs in the text. Locations come from the city's
// row-set in provider order; the scan is linear but location counts per
// city are small.
func ExtractLocation(text string, locations []string) string {
	lowered := strings.ToLower(text)
	for _, location := range locations {
		if location == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(location)) {
			return location
		}
	}
	return ""
}

// ExtractQuantity pulls a result count out of the query. A literal digit
// token always wins over a spelled-out word, even when the word appears
// earlier in the text. Falls back to def when neither parses.
func ExtractQuantity(text string, def int) int {
	if match := digitPattern.FindString(text); match != "" {
		if n, err := strconv.Atoi(match); err == nil && n >= 1 {
			return n
		}
	}

	if n, ok := parseNumberWords(text); ok && n >= 1 {
		return n
	}

	return def
}

func parseNumberWords(text string) (int, bool) {
	current := 0
	found := false

	for _, word := range strings.Fields(strings.ToLower(text)) {
		value, exists := numberWords[strings.Trim(word, ".,!?")]
		if !exists {
			continue
		}

		found = true
		if value == 100 {
			if current == 0 {
				current = 1
			}
			current *= value
		} else {
			current += value
		}
	}

	return current, found
}

// ExtractFoodName takes the text between the anchor phrase and the next
// " in " marker, trimmed. Returns an empty string when the anchor is
// absent or nothing follows it.
func ExtractFoodName(text, anchor string) string {
	lowered := strings.ToLower(text)

	idx := strings.Index(lowered, anchor)
	if idx < 0 {
		return ""
	}

	rest := lowered[idx+len(anchor):]
	if cut := strings.Index(rest, " in "); cut >= 0 {
		rest = rest[:cut]
	}

	return strings.Trim(rest, " ?!.")
}
