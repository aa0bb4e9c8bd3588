// Package cmd (auth.go) defines the commands related to authentication:
// 'auth login', 'auth logout' and 'auth status'. Login runs the OAuth 2.0
// authorization-code flow with PKCE and persists the resulting token.
package cmd

import (
	"errors"
	"fmt"
	"net/url"

	cv "github.com/nirasan/go-oauth-pkce-code-verifier"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/boxtools/box-client/internal/app"
	"github.com/boxtools/box-client/internal/config"
	"github.com/boxtools/box-client/pkg/box"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with Box",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Box",
	Long: `Starts the authorization-code flow. You will be given a URL to open in a
browser; after authorizing the app, copy-paste the URL of the page you are
redirected to back into the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrCreate()
		if err != nil {
			return fmt.Errorf("loading configuration for login: %w", err)
		}

		if cfg.Token.AccessToken != "" {
			fmt.Println("Already logged in. Run 'box-client auth logout' first to switch accounts.")
			return nil
		}

		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		redirectURL, _ := cmd.Flags().GetString("redirect-url")
		if clientID == "" {
			return errors.New("--client-id is required")
		}

		oauthConfig := box.GetOAuth2Config(clientID, clientSecret, redirectURL)

		verifier, err := cv.CreateCodeVerifier()
		if err != nil {
			return fmt.Errorf("creating code verifier: %w", err)
		}

		fmt.Println("Visit the following URL in your browser and authorize the app:")
		fmt.Println(oauthConfig.AuthCodeURL("local",
			oauth2.SetAuthURLParam("code_challenge", verifier.CodeChallengeS256()),
			oauth2.SetAuthURLParam("code_challenge_method", "S256")))
		fmt.Println("")
		fmt.Println("You'll be redirected to a page that fails to load. Copy-paste its URL here:")

		var callback string
		if _, err := fmt.Scan(&callback); err != nil {
			return fmt.Errorf("reading callback URL: %w", err)
		}

		code, err := parseCallbackCode(callback)
		if err != nil {
			return err
		}

		token, err := oauthConfig.Exchange(cmd.Context(), code,
			oauth2.SetAuthURLParam("code_verifier", verifier.String()))
		if err != nil {
			return fmt.Errorf("exchanging authorization code: %w", err)
		}

		cfg.Token = box.Token(*token)
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving token: %w", err)
		}

		okColor.Println("Logged in.")
		return nil
	},
}

// parseCallbackCode extracts the authorization code from the pasted redirect
// URL, surfacing any error the authorization server reported instead.
func parseCallbackCode(callback string) (string, error) {
	parsed, err := url.Parse(callback)
	if err != nil {
		return "", fmt.Errorf("parsing callback URL: %w", err)
	}
	query := parsed.Query()
	if query.Has("error") {
		if query.Has("error_description") {
			return "", fmt.Errorf("authorization failed: %s: %s", query.Get("error"), query.Get("error_description"))
		}
		return "", fmt.Errorf("authorization failed: %s", query.Get("error"))
	}
	if !query.Has("code") {
		return "", fmt.Errorf("no authorization code in callback: %s", callback)
	}
	return query.Get("code"), nil
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored token and log out",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrCreate()
		if err != nil {
			return fmt.Errorf("loading configuration for logout: %w", err)
		}
		cfg.Token = box.Token{}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("clearing token: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the current authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			if errors.Is(err, app.ErrNotLoggedIn) {
				fmt.Println("Not logged in. Run 'box-client auth login'.")
				return nil
			}
			return fmt.Errorf("checking authentication status: %w", err)
		}

		user, err := a.Client.GetCurrentUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("retrieving user information: %w", err)
		}
		fmt.Printf("Logged in as: %s (%s)\n", user.Name, user.Login)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	authLoginCmd.Flags().String("client-id", "", "OAuth client ID of your Box application")
	authLoginCmd.Flags().String("client-secret", "", "OAuth client secret of your Box application")
	authLoginCmd.Flags().String("redirect-url", "http://localhost", "redirect URL registered for the Box application")
}
