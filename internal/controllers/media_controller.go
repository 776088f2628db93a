package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/providers"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

// MediaController is a thin lookup/signing proxy over object storage.
// Playback URLs are keyed by content hash, never by athlete identity, so
// raw storage URLs never reach untrusted clients.
type MediaController struct {
	conf   *structures.Config
	logger providers.Logger
	cache  providers.CacheProviderInterface
	now    func() time.Time
}

func NewMediaController(conf *structures.Config, logger providers.Logger, cache providers.CacheProviderInterface) *MediaController {
	return &MediaController{conf: conf, logger: logger, cache: cache, now: time.Now}
}

func validHash(hash string) bool {
	if len(hash) < 16 || len(hash) > 64 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}

func (mc *MediaController) sign(hash string, expires int64) string {
	mac := hmac.New(sha256.New, []byte(mc.conf.Media.SigningSecret))
	fmt.Fprintf(mac, "%s|%d", hash, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

type mediaResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expiresAt"`
}

// GetMedia resolves a content hash to a signed, expiring playback URL.
func (mc *MediaController) GetMedia(w http.ResponseWriter, r *http.Request) {
	hash := r.URL.Query().Get("hash")
	if !validHash(hash) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if mc.conf.Media.BaseURL == "" || mc.conf.Media.SigningSecret == "" {
		http.Error(w, "media proxy not configured", http.StatusServiceUnavailable)
		return
	}

	if data, ok := mc.cache.Get("media:" + hash); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	ttl := mc.conf.Media.URLTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	expires := mc.now().Add(ttl).Unix()
	signed := mc.conf.Media.BaseURL + "/" + hash +
		"?exp=" + strconv.FormatInt(expires, 10) +
		"&sig=" + mc.sign(hash, expires)

	gson, err := json.Marshal(mediaResponse{URL: signed, ExpiresAt: expires})
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	mc.cache.Set("media:"+hash, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
