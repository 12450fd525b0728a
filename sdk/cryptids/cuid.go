package cryptids

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	cuidBlock = 4
	cuidBase  = 36
	cuidMax   = 36 * 36 * 36 * 36
)

var (
	cuidCounter     atomic.Uint32
	cuidFingerprint = fingerprint()
)

// GenerateCUID returns a collision resistant id in the classic cuid layout:
// "c", then a base36 millisecond timestamp, a counter block, a host
// fingerprint block and two random blocks. Output is 25 lowercase characters.
func GenerateCUID() (string, error) {
	var sb strings.Builder
	sb.Grow(25)
	sb.WriteByte('c')
	sb.WriteString(pad(strconv.FormatInt(time.Now().UnixMilli(), cuidBase), 8))
	sb.WriteString(pad(strconv.FormatUint(uint64(cuidCounter.Add(1)%cuidMax), cuidBase), cuidBlock))
	sb.WriteString(cuidFingerprint)

	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	for i := 0; i < 2; i++ {
		n := binary.BigEndian.Uint32(buf[i*4:]) % cuidMax
		sb.WriteString(pad(strconv.FormatUint(uint64(n), cuidBase), cuidBlock))
	}

	return sb.String(), nil
}

// MustCUID is GenerateCUID for contexts where crypto/rand failing is fatal.
func MustCUID() string {
	id, err := GenerateCUID()
	if err != nil {
		panic(err)
	}
	return id
}

func fingerprint() string {
	host, _ := os.Hostname()
	sum := len(host) + cuidBase
	for _, r := range host {
		sum += int(r)
	}
	pid := strconv.FormatInt(int64(os.Getpid()%(36*36)), cuidBase)
	hb := strconv.FormatInt(int64(sum%(36*36)), cuidBase)
	return pad(pid, 2) + pad(hb, 2)
}

// pad left-pads s with zeros or keeps its last n characters.
func pad(s string, n int) string {
	if len(s) >= n {
		return s[len(s)-n:]
	}
	return strings.Repeat("0", n-len(s)) + s
}
