package webhook

import (
	"net/http"
	"strconv"
	"strings"

	ghwebhooks "github.com/go-playground/webhooks/v6/github"
)

// Inbound header names.
const (
	HeaderDelivery                   = "X-Github-Delivery"
	HeaderEvent                      = "X-Github-Event"
	HeaderHookID                     = "X-Github-Hook-ID"
	HeaderHookInstallationTargetID   = "X-Github-Hook-Installation-Target-ID"
	HeaderHookInstallationTargetType = "X-Github-Hook-Installation-Target-Type"
	HeaderEnterpriseVersion          = "X-Github-Enterprise-Version"
	HeaderEnterpriseHost             = "X-Github-Enterprise-Host"
)

// DefaultHost is the enterprise host recorded when a delivery does not name one.
const DefaultHost = "github.com"

// Headers is the parsed header set of one delivery. Optional values are nil when absent.
type Headers struct {
	Delivery                   string
	Event                      ghwebhooks.Event
	HookID                     *int64
	HookInstallationTargetID   *int64
	HookInstallationTargetType *string
	EnterpriseVersion          *string
	EnterpriseHost             *string
}

// ParseHeaders reads the delivery headers. Numeric headers that do not parse are treated as absent.
func ParseHeaders(h http.Header) Headers {
	return Headers{
		Delivery:                   strings.TrimSpace(h.Get(HeaderDelivery)),
		Event:                      ghwebhooks.Event(strings.TrimSpace(h.Get(HeaderEvent))),
		HookID:                     intHeader(h, HeaderHookID),
		HookInstallationTargetID:   intHeader(h, HeaderHookInstallationTargetID),
		HookInstallationTargetType: stringHeader(h, HeaderHookInstallationTargetType),
		EnterpriseVersion:          stringHeader(h, HeaderEnterpriseVersion),
		EnterpriseHost:             stringHeader(h, HeaderEnterpriseHost),
	}
}

// Host returns the enterprise host, or DefaultHost.
func (h Headers) Host() string {
	if h.EnterpriseHost == nil || *h.EnterpriseHost == "" {
		return DefaultHost
	}
	return *h.EnterpriseHost
}

// Header renders h back into wire form. Replayed deliveries use it to look like real ones.
func (h Headers) Header() http.Header {
	out := http.Header{}
	out.Set(HeaderDelivery, h.Delivery)
	out.Set(HeaderEvent, string(h.Event))
	if h.HookID != nil {
		out.Set(HeaderHookID, strconv.FormatInt(*h.HookID, 10))
	}
	if h.HookInstallationTargetID != nil {
		out.Set(HeaderHookInstallationTargetID, strconv.FormatInt(*h.HookInstallationTargetID, 10))
	}
	if h.HookInstallationTargetType != nil {
		out.Set(HeaderHookInstallationTargetType, *h.HookInstallationTargetType)
	}
	if h.EnterpriseVersion != nil {
		out.Set(HeaderEnterpriseVersion, *h.EnterpriseVersion)
	}
	if h.EnterpriseHost != nil {
		out.Set(HeaderEnterpriseHost, *h.EnterpriseHost)
	}
	return out
}

func intHeader(h http.Header, key string) *int64 {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func stringHeader(h http.Header, key string) *string {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return nil
	}
	return &v
}
