package roster

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxSourceBytes bounds how much of a roster source is read. A name
// list that large is a mistake, not a roster.
const maxSourceBytes = 1 << 20

var httpClient = &http.Client{Timeout: 10 * time.Second}

// envelope is the object form of a roster file. The bare-array form
// covers names only.
type envelope struct {
	Names   []string `json:"names"`
	Banners []string `json:"banners"`
}

// Load resolves the roster from namesSrc and optionally separate
// banner messages from bannersSrc. Either may be a file path, an
// http(s) URL, or empty. Failures fall back to the built-in samples
// and are reported through the returned error while still producing a
// usable roster.
func Load(namesSrc, bannersSrc string) (Roster, error) {
	r := Roster{
		Names:   Normalize(defaultNames),
		Banners: append([]string(nil), defaultBanners...),
	}

	// The sources are independent and either can be a slow network
	// fetch, so they load concurrently. One failing must not stop the
	// other; Wait just carries the first failure out for the caller's
	// warning.
	var (
		g       errgroup.Group
		names   []string
		inline  []string
		banners []string
	)

	if namesSrc != "" {
		g.Go(func() error {
			data, err := fetch(namesSrc)
			if err != nil {
				return fmt.Errorf("roster source %s: %w", namesSrc, err)
			}
			n, b, err := decode(data)
			if err != nil {
				return fmt.Errorf("roster source %s: %w", namesSrc, err)
			}
			if len(Normalize(n)) == 0 {
				return fmt.Errorf("roster source %s: no usable names", namesSrc)
			}
			names, inline = n, b
			return nil
		})
	}

	if bannersSrc != "" {
		g.Go(func() error {
			data, err := fetch(bannersSrc)
			if err != nil {
				return fmt.Errorf("banner source %s: %w", bannersSrc, err)
			}
			var b []string
			if err := json.Unmarshal(data, &b); err != nil {
				return fmt.Errorf("banner source %s: %w", bannersSrc, err)
			}
			banners = b
			return nil
		})
	}

	err := g.Wait()

	if cleaned := Normalize(names); len(cleaned) > 0 {
		r.Names = cleaned
	}
	if cleaned := Normalize(inline); len(cleaned) > 0 {
		r.Banners = cleaned
	}
	// a dedicated banner source outranks banners inlined in the roster
	if cleaned := Normalize(banners); len(cleaned) > 0 {
		r.Banners = cleaned
	}
	return r, err
}

// decode accepts either a bare JSON array of names or an object with
// "names" and optional "banners" keys.
func decode(data []byte) (names, banners []string, err error) {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil, nil
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, fmt.Errorf("not a JSON array or object: %w", err)
	}
	return env.Names, env.Banners, nil
}

func fetch(src string) ([]byte, error) {
	if isURL(src) {
		resp, err := httpClient.Get(src)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(io.LimitReader(resp.Body, maxSourceBytes))
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxSourceBytes))
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
