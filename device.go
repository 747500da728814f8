package openrtb

import "github.com/anirudhraja/openrtb/enum"

// Device describes the user's device.
type Device struct {
	UA  *string    `json:"ua,omitempty"`
	Geo *Geo       `json:"geo,omitempty"`
	DNT *enum.Flag `json:"dnt,omitempty"`
	LMT *enum.Flag `json:"lmt,omitempty"`

	IP   *string `json:"ip,omitempty"`
	IPv6 *string `json:"ipv6,omitempty"`

	DeviceType *enum.DeviceType `json:"devicetype,omitempty"`
	Make       *string          `json:"make,omitempty"`
	Model      *string          `json:"model,omitempty"`
	OS         *string          `json:"os,omitempty"`
	OSV        *string          `json:"osv,omitempty"`
	HWV        *string          `json:"hwv,omitempty"`
	H          *int32           `json:"h,omitempty"`
	W          *int32           `json:"w,omitempty"`
	PPI        *int32           `json:"ppi,omitempty"`
	PxRatio    *float64         `json:"pxratio,omitempty"`
	JS         *enum.Flag       `json:"js,omitempty"`
	GeoFetch   *enum.Flag       `json:"geofetch,omitempty"`
	FlashVer   *string          `json:"flashver,omitempty"`
	Language   *string          `json:"language,omitempty"`
	Carrier    *string          `json:"carrier,omitempty"`
	MCCMNC     *string          `json:"mccmnc,omitempty"`

	ConnectionType *enum.ConnectionType `json:"connectiontype,omitempty"`

	// Device identifiers, clear or hashed.
	IFA      *string `json:"ifa,omitempty"`
	DIDSHA1  *string `json:"didsha1,omitempty"`
	DIDMD5   *string `json:"didmd5,omitempty"`
	DPIDSHA1 *string `json:"dpidsha1,omitempty"`
	DPIDMD5  *string `json:"dpidmd5,omitempty"`
	MACSHA1  *string `json:"macsha1,omitempty"`
	MACMD5   *string `json:"macmd5,omitempty"`

	Ext Ext `json:"ext,omitempty"`
}

// Geo describes a location as a lat/lon pair, an address, or both.
type Geo struct {
	Lat       *float64                `json:"lat,omitempty"`
	Lon       *float64                `json:"lon,omitempty"`
	Type      *enum.LocationType      `json:"type,omitempty"`
	Accuracy  *int32                  `json:"accuracy,omitempty"` // meters
	LastFix   *int32                  `json:"lastfix,omitempty"`  // seconds since the fix
	IPService *enum.IPLocationService `json:"ipservice,omitempty"`

	Country       *string `json:"country,omitempty"` // ISO-3166-1-alpha-3
	Region        *string `json:"region,omitempty"`
	RegionFIPS104 *string `json:"regionfips104,omitempty"`
	Metro         *string `json:"metro,omitempty"`
	City          *string `json:"city,omitempty"`
	Zip           *string `json:"zip,omitempty"`
	UTCOffset     *int32  `json:"utcoffset,omitempty"` // minutes
	Ext           Ext     `json:"ext,omitempty"`
}
