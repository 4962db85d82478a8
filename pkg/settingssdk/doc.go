/*
Package settingssdk is the client side of the partsdash settings service.

# Session

The dashboard's session is a pair of locally stored tokens, authToken and
refreshToken, held by a TokenStore. Having an authToken is what "signed in"
means; nothing else is consulted.

	tokens := settingssdk.NewFileTokenStore(path)
	tokens.OnInvalidate(func() { fmt.Println("signed out") })

# Gateway

Every outbound call goes through a Gateway. It adds the bearer header when a
token is present and, on a 401, clears the TokenStore and calls the host's
Navigator with the login path. The response is still returned to the caller.

	gw := settingssdk.NewGateway(tokens, func(path string) {
		router.Push(path)
	}, logger)

# SDKClient

SDKClient wraps the settings endpoints:

	client := settingssdk.NewSDKClient("http://localhost:8080", gw)

	doc, err := client.GetSettings(ctx)
	if settingssdk.IsUnauthorized(err) {
		// session already cleared, navigator already called
	}

	doc, err = client.UpdateSettings(ctx, settingssdk.SettingsUpdate{
		Notifications: &settingssdk.Notifications{Enabled: settingssdk.Bool(false)},
	})

An update replaces each section it carries as a whole. In the example above
the stored notifications section becomes {"enabled": false}; email, push and
frequency are dropped.

No call is retried.
*/
package settingssdk
