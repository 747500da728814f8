package openrtb

import (
	"encoding/json"
	"testing"

	"github.com/anirudhraja/openrtb/wire"
)

var (
	minimalPayload = []byte(`{"id":"b","imp":[{"id":"1","banner":{"w":300,"h":250}}]}`)
	fullPayload    = []byte(fullRequest)

	benchCodec = New()
)

// ===== DECODE BENCHMARKS =====

func BenchmarkMinimal_Codec(b *testing.B) {
	b.ReportMetric(float64(len(minimalPayload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		req, err := benchCodec.DecodeBidRequest(minimalPayload)
		if err != nil {
			b.Fatal(err)
		}
		_ = req
	}
}

func BenchmarkMinimal_SchemalessJsoniter(b *testing.B) {
	b.ReportMetric(float64(len(minimalPayload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		if err := wire.JSON.Unmarshal(minimalPayload, &m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFull_Codec(b *testing.B) {
	b.ReportMetric(float64(len(fullPayload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		req, err := benchCodec.DecodeBidRequest(fullPayload)
		if err != nil {
			b.Fatal(err)
		}
		_ = req
	}
}

func BenchmarkFull_SchemalessJsoniter(b *testing.B) {
	b.ReportMetric(float64(len(fullPayload)), "payload_bytes")
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		if err := wire.JSON.Unmarshal(fullPayload, &m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFull_EncodingJSON goes through the MarshalJSON/UnmarshalJSON
// hooks, so it measures the codec plus encoding/json's validation pass.
func BenchmarkFull_EncodingJSON(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var req BidRequest
		if err := json.Unmarshal(fullPayload, &req); err != nil {
			b.Fatal(err)
		}
	}
}

// ===== ENCODE BENCHMARKS =====

func BenchmarkFull_Encode(b *testing.B) {
	req, err := benchCodec.DecodeBidRequest(fullPayload)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := benchCodec.EncodeBidRequest(req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFull_DecodeParallel(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := benchCodec.DecodeBidRequest(fullPayload); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
