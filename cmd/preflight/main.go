// cmd/preflight/main.go
package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	target := strings.TrimSpace(os.Getenv("TARGET_URL"))
	storeURL := strings.TrimSpace(os.Getenv("STORE_URL"))
	graph := strings.TrimSpace(os.Getenv("STORE_GRAPH"))
	statusAddr := strings.TrimSpace(os.Getenv("STATUS_ADDR"))
	webhook := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK"))
	skipVerify := strings.TrimSpace(os.Getenv("STORE_INSECURE_SKIP_VERIFY"))

	checkURL := func(name, v string) {
		if v == "" {
			warn(name + " is empty; the built-in default will be used.")
			return
		}
		u, err := url.Parse(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			fail(name + " is not an absolute URL: " + v)
		}
		ok(name + "=" + v)
	}

	checkURL("TARGET_URL", target)
	checkURL("STORE_URL", storeURL)

	if graph == "" {
		warn("STORE_GRAPH is empty; records go to the \"main\" partition.")
	} else {
		ok("STORE_GRAPH=" + graph)
	}

	if statusAddr == "" {
		warn("STATUS_ADDR empty — the status API stays off.")
	} else {
		ok("STATUS_ADDR=" + statusAddr)
	}

	if webhook == "" {
		warn("SLACK_WEBHOOK empty — down/recovery alerts stay off.")
	} else {
		ok("SLACK_WEBHOOK present")
	}

	switch strings.ToLower(skipVerify) {
	case "", "0", "false":
		// verification stays on
	default:
		warn("STORE_INSECURE_SKIP_VERIFY is set — TLS certificate checks toward the store are OFF.")
	}

	ok("preflight passed")
}
