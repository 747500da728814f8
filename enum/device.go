package enum

import "github.com/anirudhraja/openrtb/wire"

// ===== DEVICE AND LOCATION LISTS (OPENRTB 5.20 TO 5.23) =====

// LocationType is OpenRTB 5.20 source of location data (type).
type LocationType int8

const (
	LocationGPS LocationType = 1 + iota
	LocationIP
	LocationUserProvided
)

var locationTypeSpan = newSpan[LocationType]("LocationType", 1,
	"GPS", "IP", "UserProvided",
)

// ParseLocationType decodes a wire integer.
func ParseLocationType(v int32) (LocationType, error) { return locationTypeSpan.parse(int64(v)) }

func (l LocationType) String() string { return locationTypeSpan.format(l) }

func (l LocationType) MarshalCode() int32 { return int32(l) }

func (l *LocationType) UnmarshalCode(v int64) error { return locationTypeSpan.unmarshal(v, l) }

func (l LocationType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(l), nil }

func (l *LocationType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, l) }

// DeviceType is OpenRTB 5.21 device types (devicetype). Mobile is deprecated in favour of Phone and Tablet.
type DeviceType int8

const (
	DeviceMobile DeviceType = 1 + iota
	DevicePersonalComputer
	DeviceConnectedTV
	DevicePhone
	DeviceTablet
	DeviceConnectedDevice
	DeviceSetTopBox
)

var deviceTypeSpan = newSpan[DeviceType]("DeviceType", 1,
	"Mobile", "PersonalComputer", "ConnectedTV", "Phone", "Tablet", "ConnectedDevice",
	"SetTopBox",
)

// ParseDeviceType decodes a wire integer.
func ParseDeviceType(v int32) (DeviceType, error) { return deviceTypeSpan.parse(int64(v)) }

func (d DeviceType) String() string { return deviceTypeSpan.format(d) }

func (d DeviceType) MarshalCode() int32 { return int32(d) }

func (d *DeviceType) UnmarshalCode(v int64) error { return deviceTypeSpan.unmarshal(v, d) }

func (d DeviceType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(d), nil }

func (d *DeviceType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, d) }

// ConnectionType is OpenRTB 5.22 network connection types (connectiontype).
type ConnectionType int8

const (
	ConnectionUnknown ConnectionType = iota
	ConnectionEthernet
	ConnectionWIFI
	ConnectionCellularUnknown
	ConnectionCellular2G
	ConnectionCellular3G
	ConnectionCellular4G
)

var connectionTypeSpan = newSpan[ConnectionType]("ConnectionType", 0,
	"Unknown", "Ethernet", "WIFI", "CellularUnknown", "Cellular2G", "Cellular3G",
	"Cellular4G",
)

// ParseConnectionType decodes a wire integer.
func ParseConnectionType(v int32) (ConnectionType, error) { return connectionTypeSpan.parse(int64(v)) }

func (c ConnectionType) String() string { return connectionTypeSpan.format(c) }

func (c ConnectionType) MarshalCode() int32 { return int32(c) }

func (c *ConnectionType) UnmarshalCode(v int64) error { return connectionTypeSpan.unmarshal(v, c) }

func (c ConnectionType) MarshalJSON() ([]byte, error) { return wire.MarshalCode(c), nil }

func (c *ConnectionType) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, c) }

// IPLocationService is OpenRTB 5.23 IP geolocation services (ipservice).
type IPLocationService int8

const (
	IPServiceIP2Location IPLocationService = 1 + iota
	IPServiceNeustar
	IPServiceMaxMind
	IPServiceNetAcuity
)

var ipLocationServiceSpan = newSpan[IPLocationService]("IPLocationService", 1,
	"IP2Location", "Neustar", "MaxMind", "NetAcuity",
)

// ParseIPLocationService decodes a wire integer.
func ParseIPLocationService(v int32) (IPLocationService, error) { return ipLocationServiceSpan.parse(int64(v)) }

func (i IPLocationService) String() string { return ipLocationServiceSpan.format(i) }

func (i IPLocationService) MarshalCode() int32 { return int32(i) }

func (i *IPLocationService) UnmarshalCode(v int64) error { return ipLocationServiceSpan.unmarshal(v, i) }

func (i IPLocationService) MarshalJSON() ([]byte, error) { return wire.MarshalCode(i), nil }

func (i *IPLocationService) UnmarshalJSON(data []byte) error { return wire.UnmarshalCode(data, i) }
