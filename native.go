package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Native describes a native ad placement. Request carries the Native Ad
// Specification payload as a JSON-encoded string.
type Native struct {
	Request string                   `json:"request" rtb:"required"`
	Ver     *string                  `json:"ver,omitempty"`
	API     []enum.APIFramework      `json:"api,omitempty"`
	BAttr   []enum.CreativeAttribute `json:"battr,omitempty"`
	Ext     Ext                      `json:"ext,omitempty"`
}
