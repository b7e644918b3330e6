// Package xbrowser opens URLs in the user's browser.
package xbrowser

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/browser"

	"oss.terrastruct.com/xos"
)

// Disabled reports whether $BROWSER asks for no browser to be opened.
func Disabled(env *xos.Env) bool {
	v := env.Getenv("BROWSER")
	return v == "0" || v == "false"
}

// OpenURL opens url with $BROWSER when set and the platform default otherwise.
func OpenURL(ctx context.Context, env *xos.Env, url string) error {
	if Disabled(env) {
		return nil
	}
	browserEnv := env.Getenv("BROWSER")
	if browserEnv != "" {
		browserSh := fmt.Sprintf("%s '$1'", browserEnv)
		cmd := exec.CommandContext(ctx, "sh", "-c", browserSh, "--", url)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("failed to run %v (out: %q): %w", cmd.Args, out, err)
		}
		return nil
	}
	return browser.OpenURL(url)
}
