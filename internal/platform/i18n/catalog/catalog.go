// Package catalog loads the embedded locale files and registers their
// messages with x/text, so message printers resolve translation keys.
//
// Files live at locales/<locale>/<namespace>.yaml and every key in a file
// starts with "<namespace>.".
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale supplies every key other locales fall back to.
const BaseLocale = "en-US"

//go:embed locales/*/*.yaml
var embedded embed.FS

var registered = mustRegister()

// Catalog holds flattened messages per locale.
type Catalog struct {
	messages map[string]map[string]string
}

type localeFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Default returns the embedded catalog registered at init.
func Default() *Catalog {
	return registered
}

// Embedded loads the catalog files compiled into the binary.
func Embedded() (*Catalog, error) {
	return Load(embedded)
}

// Load reads every locales/*/*.yaml file under fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no locale files found")
	}
	slices.Sort(files)

	c := &Catalog{messages: map[string]map[string]string{}}
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		if err := c.merge(name, file); err != nil {
			return nil, err
		}
	}
	if _, ok := c.messages[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s has no files", BaseLocale)
	}
	return c, nil
}

func (c *Catalog) merge(name string, file localeFile) error {
	wantLocale := path.Base(path.Dir(name))
	wantNamespace := strings.TrimSuffix(path.Base(name), path.Ext(name))

	switch locale := strings.TrimSpace(file.Locale); {
	case locale == "":
		return fmt.Errorf("%s: locale is required", name)
	case locale != wantLocale:
		return fmt.Errorf("%s: locale %q does not match directory %q", name, locale, wantLocale)
	}
	switch namespace := strings.TrimSpace(file.Namespace); {
	case namespace == "":
		return fmt.Errorf("%s: namespace is required", name)
	case namespace != wantNamespace:
		return fmt.Errorf("%s: namespace %q does not match file name %q", name, namespace, wantNamespace)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("%s: no messages", name)
	}

	messages := c.messages[wantLocale]
	if messages == nil {
		messages = map[string]string{}
		c.messages[wantLocale] = messages
	}
	prefix := wantNamespace + "."
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, prefix) || key == prefix {
			return fmt.Errorf("%s: key %q must start with %q", name, key, prefix)
		}
		if _, dup := messages[key]; dup {
			return fmt.Errorf("%s: key %q defined twice for %s", name, key, wantLocale)
		}
		messages[key] = value
	}
	return nil
}

// Locales lists the loaded locales in order.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	slices.Sort(out)
	return out
}

// Lookup returns the message for key, falling back to BaseLocale.
func (c *Catalog) Lookup(locale, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	if value, ok := c.messages[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := c.messages[BaseLocale][key]
	return value, ok
}

// Missing lists base keys absent from locale, sorted.
func (c *Catalog) Missing(locale string) []string {
	if c == nil {
		return nil
	}
	have := c.messages[locale]
	var out []string
	for key := range c.messages[BaseLocale] {
		if _, ok := have[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}

// Register installs every message into the x/text default catalog. A
// regional locale such as pt-BR also registers under its base language.
func (c *Catalog) Register() error {
	if c == nil {
		return nil
	}
	for _, locale := range c.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, confidence := tag.Base(); confidence != language.No {
			if baseTag, err := language.Compose(base); err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for key, value := range c.messages[locale] {
			for _, t := range tags {
				if err := message.SetString(t, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", locale, key, err)
				}
			}
		}
	}
	return nil
}

func mustRegister() *Catalog {
	c, err := Embedded()
	if err != nil {
		panic(err)
	}
	if err := c.Register(); err != nil {
		panic(err)
	}
	return c
}
