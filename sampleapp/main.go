package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"

	"github.com/anirudhraja/openrtb"
	"github.com/anirudhraja/openrtb/enum"
	"github.com/anirudhraja/openrtb/wire"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	codec := openrtb.New(openrtb.WithLogger(logger))

	fmt.Println("🚀 OpenRTB Sample App - bid request model and JSON codec")
	fmt.Println(strings.Repeat("=", 70))

	req := buildRequest()

	// Encode
	data, err := codec.EncodeBidRequest(req)
	if err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	fmt.Printf("📤 Encoded request (%d bytes):\n%s\n", len(data), data)

	// Decode
	decoded, err := codec.DecodeBidRequest(data)
	if err != nil {
		log.Fatalf("Failed to decode: %v", err)
	}
	fmt.Println("\n📥 Decoded request:")
	fmt.Printf("  id:          %s\n", decoded.ID)
	fmt.Printf("  auction:     %s\n", decoded.AT)
	for _, imp := range decoded.Imp {
		switch {
		case imp.Video != nil:
			fmt.Printf("  imp %s:       video, start delay %s, extension %s\n", imp.ID, imp.Video.StartDelay, imp.Video.MaxExtended)
		case imp.Banner != nil:
			fmt.Printf("  imp %s:       banner, %d format(s)\n", imp.ID, len(imp.Banner.Format))
		}
	}
	fmt.Printf("  gdpr (ext):  %d\n", decoded.Regs.Ext.Get("gdpr").ToInt())

	again, _ := codec.EncodeBidRequest(decoded)
	fmt.Printf("\n🔁 Re-encoded identically: %v\n", string(again) == string(data))

	demonstrateCodedValues()
	demonstrateErrors(codec)

	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("✅ Demo complete")
}

func buildRequest() *openrtb.BidRequest {
	delay, err := enum.MidRoll(15)
	if err != nil {
		log.Fatalf("Failed to build start delay: %v", err)
	}
	auction, err := enum.ExchangeAuction(501)
	if err != nil {
		log.Fatalf("Failed to build auction type: %v", err)
	}

	return &openrtb.BidRequest{
		ID: "sample-request",
		Imp: []openrtb.Imp{
			{
				ID: "1",
				Banner: &openrtb.Banner{
					Format: []openrtb.Format{
						{W: openrtb.Ptr(int32(300)), H: openrtb.Ptr(int32(250))},
						{W: openrtb.Ptr(int32(728)), H: openrtb.Ptr(int32(90))},
					},
					Pos: openrtb.Ptr(enum.PosAboveTheFold),
				},
				BidFloor: openrtb.Ptr(0.25),
			},
			{
				ID: "2",
				Video: &openrtb.Video{
					Mimes:       []string{"video/mp4"},
					StartDelay:  &delay,
					MaxExtended: openrtb.Ptr(enum.ExtensionNoLimit),
				},
			},
		},
		AT:   &auction,
		Test: openrtb.Ptr(enum.No),
		Regs: &openrtb.Regs{Ext: openrtb.Ext(`{"gdpr":1}`)},
	}
}

func demonstrateCodedValues() {
	fmt.Println("\n🔢 Coded values:")
	for _, code := range []string{"1", "2", "501", "3", "500"} {
		var at enum.AuctionType
		if err := at.UnmarshalJSON([]byte(code)); err != nil {
			fmt.Printf("  AuctionType %-4s -> %v\n", code, err)
			continue
		}
		fmt.Printf("  AuctionType %-4s -> %s\n", code, at)
	}
	for _, code := range []string{"-2", "-1", "0", "30"} {
		var sd enum.StartDelay
		if err := sd.UnmarshalJSON([]byte(code)); err != nil {
			fmt.Printf("  StartDelay  %-4s -> %v\n", code, err)
			continue
		}
		fmt.Printf("  StartDelay  %-4s -> %s\n", code, sd)
	}
}

func demonstrateErrors(codec *openrtb.Codec) {
	fmt.Println("\n⚠️  Decode errors:")
	inputs := []string{
		`{}`,
		`{"id":"x","imp":[{"id":"1","video":{"mimes":[],"startdelay":-3}}]}`,
		`{"id":"x","imp":[],"tmax":1.5}`,
		`{"id":"x","imp":[]`,
	}
	for _, in := range inputs {
		_, err := codec.DecodeBidRequest([]byte(in))
		kind := "other"
		switch {
		case errors.Is(err, wire.ErrMissingRequiredField):
			kind = "missing"
		case errors.Is(err, wire.ErrInvalidEnumeratedValue):
			kind = "invalid value"
		case errors.Is(err, wire.ErrTypeMismatch):
			kind = "type mismatch"
		case errors.Is(err, wire.ErrSyntax):
			kind = "syntax"
		}
		fmt.Printf("  %-14s path=%-24q %v\n", kind, wire.PathOf(err), err)
	}
}
