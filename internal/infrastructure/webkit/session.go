package webkit

import (
	"context"
	"fmt"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/shower/internal/logging"
)

// globalNetworkSession keeps the persistent session alive for the process.
// If it is collected WebKit falls back to an ephemeral session.
var globalNetworkSession *webkit.NetworkSession

// InitPersistentSession creates the persistent NetworkSession. It must run
// before the first WebView is created, because the first session created
// becomes the default for the network process. Calling it again is a no-op.
func InitPersistentSession(ctx context.Context, dataDir, cacheDir string) error {
	log := logging.FromContext(ctx)
	if globalNetworkSession != nil {
		log.Debug().Msg("using existing persistent network session")
		return nil
	}
	if dataDir == "" || cacheDir == "" {
		return fmt.Errorf("network session: data and cache directories are required")
	}

	session := webkit.NewNetworkSession(dataDir, cacheDir)
	if session == nil {
		return fmt.Errorf("failed to create persistent network session")
	}
	if session.IsEphemeral() {
		return fmt.Errorf("network session is ephemeral despite data directory %s", dataDir)
	}
	globalNetworkSession = session

	cookies := session.CookieManager()
	if cookies == nil {
		return fmt.Errorf("network session has no cookie manager")
	}
	cookiePath := filepath.Join(dataDir, "cookies.db")
	cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)

	log.Info().
		Str("data_dir", dataDir).
		Str("cache_dir", cacheDir).
		Str("cookies", cookiePath).
		Msg("persistent network session created")
	return nil
}
