package wa

import "strconv"

//Component is one entry of the template "components" list of the messaging API
type Component struct {
	Type       string      `json:"type"`
	SubType    string      `json:"sub_type,omitempty"`
	Index      string      `json:"index,omitempty"`
	Parameters []Parameter `json:"parameters"`
}

type Parameter struct {
	Type  string `json:"type"`
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
}

type Image struct {
	Link string `json:"link"`
}

func NewImageHeader(imageUrl string) Component {
	return Component{
		Type:       "header",
		Parameters: []Parameter{{Type: "image", Image: &Image{Link: imageUrl}}},
	}
}

func NewTextBody(params []Parameter) Component {
	return Component{
		Type:       "body",
		Parameters: params,
	}
}

//NewURLButton fills the dynamic url button at the given index of the stored template
func NewURLButton(index int, urlVariable string) Component {
	return Component{
		Type:       "button",
		SubType:    "url",
		Index:      strconv.Itoa(index),
		Parameters: []Parameter{{Type: "text", Text: urlVariable}},
	}
}
