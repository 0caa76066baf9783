/*
Package authsdk is a Go client for the user auth service.

# SDKClient vs Session

SDKClient covers the public endpoints: health probes, ID availability and
registration. Login returns a Session that carries the session cookie and
reaches the endpoints that need a logged in user.

	client := authsdk.NewSDKClient("https://auth.example.com")

	res, err := client.Register(ctx, authsdk.RegisterRequest{
		UserID:   "alice123",
		UserName: "Alice",
		Password: "Secr3t!",
		Email:    "a@x.com",
		Addr1:    "Seoul",
		Addr2:    "Gangnam-gu 1",
	})

	session, err := client.Login(ctx, "alice123", "Secr3t!")
	if errors.Is(err, authsdk.ErrLoginFailed) {
		// wrong ID or password
	}

	profile, err := session.UserInfo(ctx)
	err = session.Logout(ctx)

# Errors

Non-2xx responses are returned as *APIError, which carries the status code,
the error code from the response envelope and any per-field validation
messages.

# Thread Safety

SDKClient and Session are safe for concurrent use. Concurrent requests on one
Session share its cookie.
*/
package authsdk
