package wa

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

//Render resolves {name} placeholders of a template body against recipient attributes.
//It returns the outbound component list (optional image header followed by a body
//component carrying the resolved attributes in order of first occurrence) and the
//fully substituted text. If any placeholder has no attribute, the text is empty and
//an error listing the unresolved names is returned; the component list is still
//usable - it carries whatever did resolve.
func Render(templateBody string, attrs map[string]string, imageUrl string) ([]Component, string, error) {
	var params []Parameter
	var missing []string
	seen := make(map[string]bool)

	var buf bytes.Buffer
	_, _ = fasttemplate.ExecuteFunc(templateBody, "{", "}", &buf, func(w io.Writer, tag string) (int, error) {
		val, ok := attrs[tag]
		if !seen[tag] {
			seen[tag] = true
			if ok {
				params = append(params, Parameter{Type: "text", Text: val})
			} else {
				missing = append(missing, tag)
			}
		}
		if !ok {
			//keep the token literal, the caller discards the text anyway
			return w.Write([]byte("{" + tag + "}"))
		}
		return w.Write([]byte(val))
	})

	var components []Component
	if imageUrl != "" {
		components = append(components, NewImageHeader(imageUrl))
	}
	if len(params) > 0 {
		components = append(components, NewTextBody(params))
	}

	if len(missing) > 0 {
		return components, "", errors.New("unresolved placeholders: " + strings.Join(missing, ", "))
	}

	return components, buf.String(), nil
}
