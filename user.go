package openrtb

// User describes the human user of the device; the advertising audience.
type User struct {
	ID         *string `json:"id,omitempty"`
	BuyerUID   *string `json:"buyeruid,omitempty"`
	YOB        *int32  `json:"yob,omitempty"`
	Gender     *string `json:"gender,omitempty"` // "M", "F" or "O"
	Keywords   *string `json:"keywords,omitempty"`
	CustomData *string `json:"customdata,omitempty"`
	Geo        *Geo    `json:"geo,omitempty"`
	Data       []Data  `json:"data,omitempty"`
	Ext        Ext     `json:"ext,omitempty"`
}

// Data is additional data about the user or content from a data provider.
type Data struct {
	ID      *string   `json:"id,omitempty"`
	Name    *string   `json:"name,omitempty"`
	Segment []Segment `json:"segment,omitempty"`
	Ext     Ext       `json:"ext,omitempty"`
}

type Segment struct {
	ID    *string `json:"id,omitempty"`
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
	Ext   Ext     `json:"ext,omitempty"`
}
