// Package flags provides helpers for rendering command line flag usage text.
package flags

import (
	"fmt"
	"strings"
)

const (
	placeholderOpenConstant               = "<"
	placeholderCloseConstant              = ">"
	choiceSeparatorConstant               = "|"
	usageWithoutDescriptionFormatConstant = "`%s`"
	usageWithDescriptionFormatConstant    = "`%s` %s"
)

// FormatChoiceUsage renders flag usage text listing the accepted values,
// with the default value upper-cased inside the placeholder. Blank and
// duplicate values are dropped.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choicePlaceholder(defaultChoice, choices)
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(usageWithoutDescriptionFormatConstant, placeholder)
	}
	return fmt.Sprintf(usageWithDescriptionFormatConstant, placeholder, trimmedDescription)
}

func choicePlaceholder(defaultChoice string, choices []string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	listedChoices := make(map[string]struct{}, len(choices))

	placeholderBuilder := &strings.Builder{}
	placeholderBuilder.WriteString(placeholderOpenConstant)
	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		if len(trimmedChoice) == 0 {
			continue
		}
		normalizedChoice := strings.ToLower(trimmedChoice)
		if _, alreadyListed := listedChoices[normalizedChoice]; alreadyListed {
			continue
		}
		listedChoices[normalizedChoice] = struct{}{}

		if len(listedChoices) > 1 {
			placeholderBuilder.WriteString(choiceSeparatorConstant)
		}
		if normalizedChoice == normalizedDefault {
			placeholderBuilder.WriteString(strings.ToUpper(trimmedChoice))
			continue
		}
		placeholderBuilder.WriteString(trimmedChoice)
	}
	placeholderBuilder.WriteString(placeholderCloseConstant)

	return placeholderBuilder.String()
}
