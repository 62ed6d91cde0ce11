package facades

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/roomatch/user-service/internal/logger"
	"github.com/roomatch/user-service/internal/models"
)

const googleJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"

type googleJWKS struct {
	Keys []googleJWK `json:"keys"`
}

type googleJWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// GoogleTokenVerifierFacade verifies Google ID tokens against Google's
// published signing keys. Keys are cached in-process and refetched when the
// cache window elapses or an unknown key id shows up.
type GoogleTokenVerifierFacade struct {
	audiences  []string
	jwksURL    string
	httpClient *http.Client
	cacheTTL   time.Duration

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

// GoogleOpt configures the verifier facade.
type GoogleOpt func(*GoogleTokenVerifierFacade)

// WithJWKSURL overrides the Google JWKS endpoint.
func WithJWKSURL(url string) GoogleOpt {
	return func(f *GoogleTokenVerifierFacade) { f.jwksURL = url }
}

// WithHTTPClient overrides the HTTP client used for JWKS fetches.
func WithHTTPClient(c *http.Client) GoogleOpt {
	return func(f *GoogleTokenVerifierFacade) { f.httpClient = c }
}

// WithCacheTTL overrides how long fetched keys are reused.
func WithCacheTTL(ttl time.Duration) GoogleOpt {
	return func(f *GoogleTokenVerifierFacade) { f.cacheTTL = ttl }
}

// NewGoogleTokenVerifierFacade creates a verifier accepting tokens issued for
// any of the given audiences (web, android and iOS client ids).
func NewGoogleTokenVerifierFacade(audiences []string, opts ...GoogleOpt) *GoogleTokenVerifierFacade {
	f := &GoogleTokenVerifierFacade{
		audiences:  audiences,
		jwksURL:    googleJWKSURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cacheTTL:   time.Hour,
		keys:       make(map[string]*rsa.PublicKey),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Verify checks the token signature, issuer, audience and expiry, and returns
// the verified claim set. The caller trusts the returned claims completely.
func (f *GoogleTokenVerifierFacade) Verify(ctx context.Context, idToken string) (*models.GoogleClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token header missing kid")
		}
		return f.key(ctx, kid)
	})
	if err != nil {
		return nil, fmt.Errorf("parse google id token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid google id token")
	}

	iss, _ := claims["iss"].(string)
	if iss != "accounts.google.com" && iss != "https://accounts.google.com" {
		return nil, fmt.Errorf("unexpected issuer %q", iss)
	}

	aud, err := claims.GetAudience()
	if err != nil {
		return nil, errors.New("token has no audience")
	}
	if !f.audienceAllowed(aud) {
		return nil, errors.New("token audience does not match any configured client id")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, errors.New("token missing email or sub")
	}

	return &models.GoogleClaims{
		Sub:        sub,
		Email:      email,
		GivenName:  optionalString(claims, "given_name"),
		FamilyName: optionalString(claims, "family_name"),
	}, nil
}

func (f *GoogleTokenVerifierFacade) audienceAllowed(aud jwt.ClaimStrings) bool {
	for _, got := range aud {
		for _, want := range f.audiences {
			if got == want {
				return true
			}
		}
	}
	return false
}

// key returns the cached public key for kid, refetching the JWKS when the
// cache is stale or does not know the kid.
func (f *GoogleTokenVerifierFacade) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	f.mu.RLock()
	key, ok := f.keys[kid]
	fresh := time.Now().Before(f.expiresAt)
	f.mu.RUnlock()

	if ok && fresh {
		return key, nil
	}

	if err := f.fetchKeys(ctx); err != nil {
		return nil, err
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	key, ok = f.keys[kid]
	if !ok {
		return nil, fmt.Errorf("no google signing key with kid %q", kid)
	}
	return key, nil
}

func (f *GoogleTokenVerifierFacade) fetchKeys(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.jwksURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch google JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("google JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks googleJWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("decode google JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, jwk := range jwks.Keys {
		if jwk.Kty != "RSA" {
			continue
		}
		pubKey, err := parseRSAPublicKey(jwk.N, jwk.E)
		if err != nil {
			logger.Log.Errorw("skipping malformed google JWK", "kid", jwk.Kid, "error", err)
			continue
		}
		keys[jwk.Kid] = pubKey
	}
	if len(keys) == 0 {
		return errors.New("google JWKS contained no usable keys")
	}

	f.mu.Lock()
	f.keys = keys
	f.expiresAt = time.Now().Add(f.cacheTTL)
	f.mu.Unlock()

	return nil
}

func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	n := new(big.Int).SetBytes(nBytes)
	e := new(big.Int).SetBytes(eBytes)

	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}

func optionalString(claims jwt.MapClaims, key string) *string {
	if v, ok := claims[key].(string); ok && v != "" {
		return &v
	}
	return nil
}
