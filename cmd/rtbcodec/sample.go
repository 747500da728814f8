package main

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/anirudhraja/openrtb"
	"github.com/anirudhraja/openrtb/enum"
)

func newSampleCmd(a *app) *cobra.Command {
	var (
		imps  int
		video bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a generated bid request",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := sampleRequest(imps, video)
			doc, err := a.newCodec(false).EncodeBidRequest(req)
			if err != nil {
				return err
			}
			return printDocument(cmd.OutOrStdout(), doc, a.cfg.Output)
		},
	}

	cmd.Flags().IntVar(&imps, "imps", 1, "number of impressions")
	cmd.Flags().BoolVar(&video, "video", false, "offer video impressions instead of banners")
	return cmd
}

func sampleRequest(imps int, video bool) *openrtb.BidRequest {
	req := &openrtb.BidRequest{
		ID:   uuid.NewString(),
		Imp:  make([]openrtb.Imp, 0, imps),
		AT:   openrtb.Ptr(enum.FirstPrice),
		TMax: openrtb.Ptr(int32(120)),
		Cur:  []string{"USD"},
		Site: &openrtb.Site{
			ID:        openrtb.Ptr("site-1"),
			Page:      openrtb.Ptr("https://www.example.com/"),
			Publisher: &openrtb.Publisher{ID: openrtb.Ptr("pub-1")},
		},
		Device: &openrtb.Device{
			UA:         openrtb.Ptr("Mozilla/5.0"),
			IP:         openrtb.Ptr("192.0.2.1"),
			DeviceType: openrtb.Ptr(enum.DevicePersonalComputer),
		},
		Source: &openrtb.Source{TID: openrtb.Ptr(uuid.NewString())},
	}

	for i := 0; i < imps; i++ {
		imp := openrtb.Imp{
			ID:       strconv.Itoa(i + 1),
			BidFloor: openrtb.Ptr(0.5),
		}
		if video {
			imp.Video = &openrtb.Video{
				Mimes:       []string{"video/mp4"},
				Protocols:   []enum.Protocol{enum.ProtocolVAST3, enum.ProtocolVAST4},
				StartDelay:  openrtb.Ptr(enum.PreRoll),
				MaxExtended: openrtb.Ptr(enum.ExtensionNotAllowed),
			}
		} else {
			imp.Banner = &openrtb.Banner{
				Format: []openrtb.Format{{W: openrtb.Ptr(int32(300)), H: openrtb.Ptr(int32(250))}},
			}
		}
		req.Imp = append(req.Imp, imp)
	}
	return req
}
