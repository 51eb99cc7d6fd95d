package utils

import "fmt"

const (
	truncationSlackConstant          = 14
	truncationTemplateConstant       = "%s<... +%d chars>%s"
	byteCountDescriptionTemplateConstant = "%d bytes"
)

// TruncateString shortens overlong text for display by keeping the requested
// number of leading and trailing characters and eliding the middle. Text
// short enough that elision would not save space is returned unchanged.
func TruncateString(text string, keepFront int, keepBack int) string {
	runes := []rune(text)
	if len(runes) < keepFront+keepBack+truncationSlackConstant {
		return text
	}
	front := string(runes[:keepFront])
	back := ""
	if keepBack > 0 {
		back = string(runes[len(runes)-keepBack:])
	}
	return fmt.Sprintf(truncationTemplateConstant, front, len(runes)-keepFront-keepBack, back)
}

// DescribeBytes summarizes binary data by its length instead of its content.
func DescribeBytes(data []byte) string {
	return fmt.Sprintf(byteCountDescriptionTemplateConstant, len(data))
}
