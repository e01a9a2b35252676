//go:build linux && cgo

package crypthash

/*
#cgo LDFLAGS: -lcrypt
#include <crypt.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// NativeBackend delegates to the platform crypt(3) implementation.
//
// Which schemes the host library accepts varies (glibc lacks blowfish,
// libxcrypt builds may drop legacy DES), so the method set is probed once at
// construction and fixed afterwards. Calls are serialised internally because
// crypt(3) returns a pointer into static storage.
type NativeBackend struct {
	mu      sync.Mutex
	methods []Algorithm
}

// nativeProbes are throwaway settings used to ask the host library which
// schemes it accepts.
var nativeProbes = []struct {
	algorithm Algorithm
	setting   string
}{
	{AlgorithmSHA512, "$6$UbNYGmAqr1I5P3Cj"},
	{AlgorithmSHA256, "$5$UbNYGmAqr1I5P3Cj"},
	{AlgorithmBlowfish, "$2b$04$abcdefghijklmnopqrstuv"},
	{AlgorithmMD5, "$1$UbNYGmAq"},
	{AlgorithmDES, "Ub"},
}

// NewNativeBackend probes the platform crypt(3) and returns a backend for
// the schemes it accepts, or [ErrBackendUnavailable] when none work.
func NewNativeBackend() (*NativeBackend, error) {
	b := &NativeBackend{}
	for _, p := range nativeProbes {
		out, err := b.crypt("probe", p.setting)
		if err == nil && settingAccepted(out, p.setting) {
			b.methods = append(b.methods, p.algorithm)
		}
	}
	if len(b.methods) == 0 {
		return nil, ErrBackendUnavailable
	}
	return b, nil
}

// settingAccepted reports whether a crypt(3) result looks like a real hash
// for the probed setting. Failing libcrypt implementations return NULL, an
// empty string, or a "*0"/"*1" error token.
func settingAccepted(out, setting string) bool {
	if len(out) < 13 || out[0] == '*' {
		return false
	}
	if strings.HasPrefix(setting, "$") {
		prefix := setting[:strings.IndexByte(setting[1:], '$')+2]
		return strings.HasPrefix(out, prefix)
	}
	return strings.HasPrefix(out, setting)
}

// Name returns "crypt".
func (b *NativeBackend) Name() string { return "crypt" }

// Methods returns the probed scheme list, strongest first.
func (b *NativeBackend) Methods() []Algorithm {
	return slices.Clone(b.methods)
}

// Hash derives the crypt(3) string for password under algorithm.
// See [Backend] for the accepted salt forms.
func (b *NativeBackend) Hash(password, salt string, algorithm Algorithm) (string, error) {
	if !slices.Contains(b.methods, algorithm) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	setting := salt
	switch {
	case setting == "":
		var err error
		setting, err = generateSetting(algorithm)
		if err != nil {
			return "", err
		}
	case algorithm == AlgorithmBlowfish:
		st, err := parseBlowfishSetting(setting)
		if err != nil {
			return "", err
		}
		setting = st.String()
	case algorithm != AlgorithmDES && !strings.HasPrefix(setting, "$"):
		setting = algorithm.prefix() + setting
	}
	out, err := b.crypt(password, setting)
	if err != nil {
		return "", err
	}
	if len(out) == 0 || out[0] == '*' {
		return "", fmt.Errorf("crypthash: crypt(3) rejected the %s setting %q", algorithm, setting)
	}
	return out, nil
}

func (b *NativeBackend) crypt(password, setting string) (string, error) {
	cPass := C.CString(password)
	cSetting := C.CString(setting)
	defer C.free(unsafe.Pointer(cPass))
	defer C.free(unsafe.Pointer(cSetting))

	b.mu.Lock()
	defer b.mu.Unlock()
	out := C.crypt(cPass, cSetting)
	if out == nil {
		return "", fmt.Errorf("crypthash: crypt(3) returned NULL for setting %q", setting)
	}
	return C.GoString(out), nil
}
