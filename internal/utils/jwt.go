package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // errors defines the sentinel returned for any verification failure
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by VerifyAccessToken for every failure mode:
// bad signature, wrong algorithm, malformed structure or expiry.  Callers
// deliberately cannot tell these apart, so verification internals are not
// leaked to clients.
var ErrInvalidToken = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens travel as a field of the request
// body when calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Identity is the verified (email, role) pair carried by a token.  It
// reflects the account state at issuance time; role changes after issuance
// are not visible until a new token is issued.
type Identity struct {
    Email string // account email, the ownership key for all records
    Role  string // "seller" or "customer"
}

// NewAccessToken builds and signs an HS256 JWT for an account.  It takes the
// signing secret, the account email, the account role and a TTL in minutes.
// The JWT carries the email and role claims plus expiration (exp) and
// issued at (iat).  The token is the only session state in the system;
// nothing is stored server side.
func NewAccessToken(secret, email, role string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "email": email,
        "role":  role,
        "exp":   exp.Unix(),
        "iat":   now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw token string and returns the
// identity embedded in it.  Verification is pure and stateless: signature,
// algorithm and expiry are checked, nothing is looked up.  Any failure is
// reported as ErrInvalidToken.
func VerifyAccessToken(secret, raw string) (Identity, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC; "alg":"none" and
        // asymmetric confusion attacks both fail here.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Identity{}, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Identity{}, ErrInvalidToken
    }
    email, _ := claims["email"].(string)
    role, _ := claims["role"].(string)
    if email == "" || role == "" {
        return Identity{}, ErrInvalidToken
    }
    return Identity{Email: email, Role: role}, nil
}
