package crypthash

import "testing"

// FuzzSplitSetting exercises the hash-format sniffing against arbitrary
// input. The setting it extracts must be a proper prefix of the hash, and
// detection must agree with the split.
func FuzzSplitSetting(f *testing.F) {
	f.Add("$6$rounds=65601$goodsalt$lZFhiN5M8RTLd9WKDin50H4lF4F8HGMIdwvKs.nTG7f8F0Y4P447Zb9/E8SkUWjY.K10QT3NuHZNDgc/P/NjT1")
	f.Add("$5$goodsalt$W.uoco0wMfGLDOlsbW52E6raFS1Nhj0McfUTj2vORt7")
	f.Add("$2b$10$goodsaltgoodsaltgoodsObFfGrJwfV.13QddrZIh2w1ccESmvj8K")
	f.Add("$1$goodsalt$4XQMx4a4e1MpBB8xzz.TQ0")
	f.Add("goVHulDpuGA7w")
	f.Add("")
	f.Add("$$$")
	f.Fuzz(func(t *testing.T, hash string) {
		algorithm, setting, err := splitSetting(hash)
		if err != nil {
			return
		}
		if !knownAlgorithm(algorithm) {
			t.Fatalf("split returned unknown algorithm %q for %q", algorithm, hash)
		}
		if len(setting) > len(hash) || hash[:len(setting)] != setting {
			t.Fatalf("setting %q is not a prefix of %q", setting, hash)
		}
		if detected, ok := DetectAlgorithm(hash); !ok || detected != algorithm {
			t.Fatalf("DetectAlgorithm(%q) = (%q, %v), split said %q", hash, detected, ok, algorithm)
		}
	})
}

// FuzzParseBlowfishSetting checks the salt-setting parser never accepts a
// cost outside the valid range and round-trips what it accepts.
func FuzzParseBlowfishSetting(f *testing.F) {
	f.Add("goodsaltgoodsaltgoodsa")
	f.Add("10$goodsaltgoodsaltgoodsa")
	f.Add("$2y$04$goodsaltgoodsaltgoodsa")
	f.Add("$2b$")
	f.Add("99$x")
	f.Fuzz(func(t *testing.T, salt string) {
		st, err := parseBlowfishSetting(salt)
		if err != nil {
			return
		}
		if st.cost < BlowfishMinCost || st.cost > BlowfishMaxCost {
			t.Fatalf("accepted out-of-range cost %d from %q", st.cost, salt)
		}
		reparsed, err := parseBlowfishSetting(st.String())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", st.String(), err)
		}
		if reparsed != st {
			t.Fatalf("round trip changed setting: %+v vs %+v", st, reparsed)
		}
	})
}
