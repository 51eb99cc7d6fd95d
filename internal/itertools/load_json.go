package itertools

import (
	"fmt"
	"iter"

	"github.com/tidwall/gjson"

	"github.com/datalad/datasalad/internal/utils"
)

const (
	invalidJSONTemplateConstant      = "invalid JSON item: %s"
	invalidJSONItemKeepFrontConstant = 40
	invalidJSONItemKeepBackConstant  = 20
)

// JSONDecodingError reports an item that was not valid JSON.
type JSONDecodingError struct {
	// Item is the offending item verbatim.
	Item []byte
}

// Error describes the invalid item with long payloads truncated.
func (decodingError JSONDecodingError) Error() string {
	return fmt.Sprintf(invalidJSONTemplateConstant,
		utils.TruncateString(string(decodingError.Item), invalidJSONItemKeepFrontConstant, invalidJSONItemKeepBackConstant))
}

// LoadJSON parses each item of the sequence as one JSON document, yielding
// the parsed result paired with a parse error. A failed item yields a
// JSONDecodingError alongside a zero result and the sequence continues, so
// callers decide per item whether a failure is terminal. Combined with
// Itemize this processes JSON-lines output of a subprocess.
func LoadJSON(source iter.Seq[[]byte]) iter.Seq2[gjson.Result, error] {
	return func(yield func(gjson.Result, error) bool) {
		for item := range source {
			if !gjson.ValidBytes(item) {
				if !yield(gjson.Result{}, JSONDecodingError{Item: copyBytes(item)}) {
					return
				}
				continue
			}
			if !yield(gjson.ParseBytes(item), nil) {
				return
			}
		}
	}
}
