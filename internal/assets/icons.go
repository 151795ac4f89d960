package assets

import (
	"os"
	"regexp"
	"strings"
)

// IconOverrides maps panorama CSS classes to the image reference their style
// rule declares. Some item records only carry a usable icon through the
// build's ability icon stylesheet, so a class match wins over the record's
// own image field.
type IconOverrides map[string]string

var (
	cssCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	cssRulePattern    = regexp.MustCompile(`(?s)([^{}]+)\{([^{}]*)\}`)
	cssIconPattern    = regexp.MustCompile(`background-image\s*:\s*url\(\s*['"]?([^'")]+)['"]?\s*\)`)
)

// ParseIconOverrides reads a panorama stylesheet and extracts the
// background-image of every style rule, keyed by the CSS classes the rule's
// selectors mention. Rules without a background-image are skipped. The first
// rule naming a class wins.
func ParseIconOverrides(path string) (IconOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseIconOverrides(string(data)), nil
}

func parseIconOverrides(stylesheet string) IconOverrides {
	out := make(IconOverrides)
	stylesheet = cssCommentPattern.ReplaceAllString(stylesheet, "")
	for _, rule := range cssRulePattern.FindAllStringSubmatch(stylesheet, -1) {
		icon := cssIconPattern.FindStringSubmatch(rule[2])
		if icon == nil {
			continue
		}
		ref := iconReference(icon[1])
		for _, class := range selectorClasses(rule[1]) {
			if _, ok := out[class]; !ok {
				out[class] = ref
			}
		}
	}
	return out
}

// selectorClasses splits a selector list like ".Foo, .Bar .Baz" into the
// bare class names it mentions.
func selectorClasses(selector string) []string {
	return strings.FieldsFunc(selector, func(r rune) bool {
		return r == '.' || r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// iconReference converts a compiled texture path from the stylesheet back
// into the engine source reference the raw records use, so it flows through
// the same URL normalization as every other image field.
func iconReference(url string) string {
	url = strings.ReplaceAll(url, "_psd.vtex", ".psd")
	if idx := strings.LastIndex(url, "images/"); idx >= 0 {
		url = url[idx+len("images/"):]
	}
	return `panorama:"file://{images}/` + url + `"`
}
