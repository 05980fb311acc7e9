package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"smartparking/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

// NewID returns a log id: millis(base36) + host ipv4(hex) + pid + random(base36).
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(maxSize, ip.IPv4Hex()+strconv.Itoa(os.Getpid()), stop),
		stop: stop,
	}
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

func (idgen *IDGenerator) NewID() string {
	return <-idgen.pool
}

func newPool(size int, host string, stop <-chan struct{}) <-chan string {
	pool := make(chan string, size)

	go func() {
		for {
			sb := strings.Builder{}
			sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
			sb.WriteString(host)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
