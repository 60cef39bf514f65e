// Package weibo provides a Weibo OAuth 2.0 authentication strategy.
//
// The strategy supplies the Weibo endpoints, a User-Agent header and a
// profile mapping on top of a generic OAuth2 client built on
// golang.org/x/oauth2. The host application drives the login flow:
// it redirects to AuthCodeURL, exchanges the returned code and receives a
// normalized Profile through its VerifyFunc.
//
// # Usage
//
//	strategy, err := weibo.New(weibo.Config{
//		ClientID:     os.Getenv("WEIBO_CLIENT_ID"),
//		ClientSecret: os.Getenv("WEIBO_CLIENT_SECRET"),
//		CallbackURL:  "https://example.com/auth/weibo/callback",
//	}, func(ctx context.Context, token *oauth2.Token, profile *weibo.Profile) (any, error) {
//		return users.FindOrCreate(ctx, profile.Provider, profile.ID)
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Redirect the user
//	url := strategy.AuthCodeURL("random-state-string")
//
//	// In the callback handler
//	user, err := strategy.Authenticate(ctx, code, "")
//
// # Profile Retrieval
//
// UserProfile makes two sequential requests with the access token as a
// bearer credential:
//
//	GET https://api.weibo.com/2/account/get_uid.json        -> {"uid": 123}
//	GET https://api.weibo.com/2/users/show.json?uid=123     -> profile object
//
// The second request is never issued before the first one succeeds.
//
// # User-Agent
//
// The User-Agent header is taken from Config.CustomHeaders["User-Agent"] when
// present, then from Config.UserAgent, then DefaultUserAgent.
//
// # Error Handling
//
//   - *InternalOAuthError: a request to Weibo failed (network error or
//     non-2xx status). errors.Is(err, ErrFetchFailed) reports true.
//   - ErrDecodeFailed: a response body was not valid JSON. The encoding/json
//     error is joined and reachable with errors.As.
//
// Missing profile fields are not errors; they produce empty values.
package weibo
