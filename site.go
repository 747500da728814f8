package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Site describes the website in which the impression will be shown.
type Site struct {
	ID     *string `json:"id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Domain *string `json:"domain,omitempty"`

	// IAB content categories of the site, section and page.
	Cat        []string `json:"cat,omitempty"`
	SectionCat []string `json:"sectioncat,omitempty"`
	PageCat    []string `json:"pagecat,omitempty"`

	Page   *string `json:"page,omitempty"`
	Ref    *string `json:"ref,omitempty"`
	Search *string `json:"search,omitempty"`

	Mobile        *enum.Flag `json:"mobile,omitempty"`
	PrivacyPolicy *enum.Flag `json:"privacypolicy,omitempty"`
	Publisher     *Publisher `json:"publisher,omitempty"`
	Content       *Content   `json:"content,omitempty"`
	Keywords      *string    `json:"keywords,omitempty"`
	Ext           Ext        `json:"ext,omitempty"`
}

// App describes the non-browser application in which the impression will
// be shown.
type App struct {
	ID       *string `json:"id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Bundle   *string `json:"bundle,omitempty"`
	Domain   *string `json:"domain,omitempty"`
	StoreURL *string `json:"storeurl,omitempty"`

	Cat        []string `json:"cat,omitempty"`
	SectionCat []string `json:"sectioncat,omitempty"`
	PageCat    []string `json:"pagecat,omitempty"`

	Ver           *string    `json:"ver,omitempty"`
	PrivacyPolicy *enum.Flag `json:"privacypolicy,omitempty"`
	Paid          *enum.Flag `json:"paid,omitempty"`
	Publisher     *Publisher `json:"publisher,omitempty"`
	Content       *Content   `json:"content,omitempty"`
	Keywords      *string    `json:"keywords,omitempty"`
	Ext           Ext        `json:"ext,omitempty"`
}

// Publisher describes the publisher of the media.
type Publisher struct {
	ID     *string  `json:"id,omitempty"`
	Name   *string  `json:"name,omitempty"`
	Cat    []string `json:"cat,omitempty"`
	Domain *string  `json:"domain,omitempty"`
	Ext    Ext      `json:"ext,omitempty"`
}
