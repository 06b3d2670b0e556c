package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/tidwall/jsonc"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/system"
)

const (
	// SettingsFileName is the operator-owned settings file under ConfigDir.
	SettingsFileName = "kiosk.json"

	// TaskName is the scheduled task that launches the kiosk browser at logon.
	TaskName = "KioskBrowserLaunch"

	// DefaultCredentialFileName is where `secret set` stores the encrypted
	// credential artifact unless the settings file names another file.
	DefaultCredentialFileName = "kiosk-password.txt"
)

// BrowserKind selects which browser binary and kiosk flag set to use.
type BrowserKind string

const (
	BrowserEdge   BrowserKind = "edge"
	BrowserChrome BrowserKind = "chrome"
)

// ParseBrowser converts an operator-supplied string into a BrowserKind.
// Matching is case-insensitive; anything outside {edge, chrome} is a
// validation error, never a silent default.
func ParseBrowser(s string) (BrowserKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "edge":
		return BrowserEdge, nil
	case "chrome":
		return BrowserChrome, nil
	default:
		return "", fmt.Errorf("invalid browser %q: must be one of edge, chrome", s)
	}
}

// UnmarshalJSON validates the browser value strictly while parsing a
// settings file.
func (b *BrowserKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("browser must be a string: %w", err)
	}
	kind, err := ParseBrowser(s)
	if err != nil {
		return err
	}
	*b = kind
	return nil
}

// Settings is the merged configuration record for one run. It is
// immutable once Resolve returns it.
type Settings struct {
	AccountName             string
	AccountDisplayName      string
	TargetURL               string
	Browser                 BrowserKind
	EnableAutoLogon         bool
	DisableAutoLogon        bool
	MinimumBuildNumber      int
	InstallBrowserIfMissing bool
	EncryptedPasswordFile   string
}

// DefaultSettings returns the built-in defaults every resolution starts from.
func DefaultSettings() Settings {
	return Settings{
		AccountName:        "cncpendant",
		AccountDisplayName: "CNC Pendant",
		TargetURL:          "http://cnc-controller.local/",
		Browser:            BrowserEdge,
		EnableAutoLogon:    true,
		// Windows 10 1809, the oldest build the kiosk setup is exercised on.
		// Advisory only; older builds prompt rather than abort.
		MinimumBuildNumber: 17763,
	}
}

// Validate checks the merged record before the pipeline acts on it.
func (s Settings) Validate() error {
	if err := ValidateAccountName(s.AccountName); err != nil {
		return err
	}
	if s.TargetURL == "" {
		return fmt.Errorf("targetUrl cannot be empty")
	}
	if s.Browser != BrowserEdge && s.Browser != BrowserChrome {
		return fmt.Errorf("invalid browser %q: must be one of edge, chrome", s.Browser)
	}
	if s.MinimumBuildNumber < 0 {
		return fmt.Errorf("minimumBuildNumber cannot be negative")
	}
	return nil
}

// forbiddenAccountChars are the characters Windows rejects in local
// account names.
const forbiddenAccountChars = `"/\[]:;|=,+*?<>@`

// ValidateAccountName checks if a local account name is acceptable.
// Windows limits account names to 20 characters, forbids
// "/\[]:;|=,+*?<>@ and control characters, and rejects names that end
// in a period or consist only of spaces.
func ValidateAccountName(name string) error {
	if name == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if len(name) > 20 {
		return fmt.Errorf("account name %q too long: maximum 20 characters", name)
	}
	if strings.ContainsAny(name, forbiddenAccountChars) {
		return fmt.Errorf("invalid account name %q: must not contain %s", name, forbiddenAccountChars)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("account name cannot be only spaces")
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("invalid account name %q: leading or trailing spaces", name)
	}
	if strings.HasSuffix(name, ".") {
		return fmt.Errorf("invalid account name %q: cannot end with a period", name)
	}
	for _, r := range name {
		if r < 0x20 {
			return fmt.Errorf("invalid account name %q: control characters not allowed", name)
		}
	}
	return nil
}

// Overlay is one configuration source's view of the settings. Every
// field is a pointer; nil means the source does not set that field.
// The same shape serves the settings file and the CLI flags, so
// presence is structural rather than a sentinel value.
type Overlay struct {
	AccountName             *string      `json:"accountName"`
	AccountDisplayName      *string      `json:"accountDisplayName"`
	TargetURL               *string      `json:"targetUrl"`
	Browser                 *BrowserKind `json:"browser"`
	EnableAutoLogon         *bool        `json:"enableAutoLogin"`
	DisableAutoLogon        *bool        `json:"disableAutoLogin"`
	MinimumBuildNumber      *int         `json:"minimumBuildNumber"`
	InstallBrowserIfMissing *bool        `json:"installBrowserIfMissing"`
	EncryptedPasswordFile   *string      `json:"encryptedPasswordFile"`

	// ConfirmAutoLogin is the legacy spelling of the opt-out: older
	// settings files wrote confirmAutoLogin=false to mean "switch
	// auto-logon off". Consulted only when DisableAutoLogon is absent
	// from the same source.
	ConfirmAutoLogin *bool `json:"confirmAutoLogin"`
}

// normalized returns a copy with the legacy confirmAutoLogin key folded
// into DisableAutoLogon. An explicit DisableAutoLogon in the same
// source wins over the legacy inverse.
func (o Overlay) normalized() Overlay {
	if o.DisableAutoLogon == nil && o.ConfirmAutoLogin != nil {
		disable := !*o.ConfirmAutoLogin
		o.DisableAutoLogon = &disable
	}
	o.ConfirmAutoLogin = nil
	return o
}

// Resolve merges the configuration sources into one Settings record.
// Precedence is CLI over file over defaults, decided field-by-field by
// pointer presence. Pure: same inputs always produce the same record.
func Resolve(defaults Settings, file, cli *Overlay) (Settings, error) {
	// WithoutDereference keeps presence a property of the pointer itself:
	// a source's explicit false must not look "empty" to the merge.
	merged := Overlay{}
	if cli != nil {
		c := cli.normalized()
		if err := mergo.Merge(&merged, c, mergo.WithoutDereference); err != nil {
			return Settings{}, fmt.Errorf("failed to merge CLI overrides: %w", err)
		}
	}
	if file != nil {
		f := file.normalized()
		if err := mergo.Merge(&merged, f, mergo.WithoutDereference); err != nil {
			return Settings{}, fmt.Errorf("failed to merge settings file: %w", err)
		}
	}
	return merged.apply(defaults), nil
}

// apply materializes the overlay over the defaults. Fields the overlay
// leaves nil keep their default.
func (o Overlay) apply(defaults Settings) Settings {
	s := defaults
	if o.AccountName != nil {
		s.AccountName = *o.AccountName
	}
	if o.AccountDisplayName != nil {
		s.AccountDisplayName = *o.AccountDisplayName
	}
	if o.TargetURL != nil {
		s.TargetURL = *o.TargetURL
	}
	if o.Browser != nil {
		s.Browser = *o.Browser
	}
	if o.EnableAutoLogon != nil {
		s.EnableAutoLogon = *o.EnableAutoLogon
	}
	if o.DisableAutoLogon != nil {
		s.DisableAutoLogon = *o.DisableAutoLogon
	}
	if o.MinimumBuildNumber != nil {
		s.MinimumBuildNumber = *o.MinimumBuildNumber
	}
	if o.InstallBrowserIfMissing != nil {
		s.InstallBrowserIfMissing = *o.InstallBrowserIfMissing
	}
	if o.EncryptedPasswordFile != nil {
		s.EncryptedPasswordFile = *o.EncryptedPasswordFile
	}
	return s
}

// LoadOverlay reads and parses the settings file at path into an
// Overlay. Comments and trailing commas are tolerated; unknown keys are
// ignored. An invalid browser value is a parse error, so a bad file is
// discarded whole by the caller rather than partially applied.
func LoadOverlay(fsys system.FileSystem, path string) (*Overlay, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var overlay Overlay
	if err := json.Unmarshal(jsonc.ToJSON(data), &overlay); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return &overlay, nil
}

// settingsFile is the on-disk shape written by `kioskctl init`. Keys
// match the ones LoadOverlay reads, so a written file round-trips.
type settingsFile struct {
	AccountName             string `json:"accountName"`
	AccountDisplayName      string `json:"accountDisplayName"`
	TargetURL               string `json:"targetUrl"`
	Browser                 string `json:"browser"`
	EnableAutoLogon         bool   `json:"enableAutoLogin"`
	DisableAutoLogon        bool   `json:"disableAutoLogin"`
	MinimumBuildNumber      int    `json:"minimumBuildNumber"`
	InstallBrowserIfMissing bool   `json:"installBrowserIfMissing"`
	EncryptedPasswordFile   string `json:"encryptedPasswordFile,omitempty"`
}

// SaveSettings writes a complete settings record as the operator
// settings file. Only the interactive editor calls this; provisioning
// never writes settings back.
func SaveSettings(fsys system.FileSystem, path string, s Settings) error {
	out := settingsFile{
		AccountName:             s.AccountName,
		AccountDisplayName:      s.AccountDisplayName,
		TargetURL:               s.TargetURL,
		Browser:                 string(s.Browser),
		EnableAutoLogon:         s.EnableAutoLogon,
		DisableAutoLogon:        s.DisableAutoLogon,
		MinimumBuildNumber:      s.MinimumBuildNumber,
		InstallBrowserIfMissing: s.InstallBrowserIfMissing,
		EncryptedPasswordFile:   s.EncryptedPasswordFile,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := fsys.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// CredentialPath resolves the encrypted credential artifact reference
// from the settings file to an absolute path. Relative references are
// contained under the config directory so an operator-supplied name
// cannot escape it. An empty reference resolves to an empty path.
func CredentialPath(p *Paths, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if filepath.IsAbs(ref) {
		return ref, nil
	}
	path, err := securejoin.SecureJoin(p.ConfigDir, ref)
	if err != nil {
		return "", fmt.Errorf("invalid credential file reference %q: %w", ref, err)
	}
	return path, nil
}
