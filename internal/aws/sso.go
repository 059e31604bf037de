package aws

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/user/sso2json/internal/logging"
)

// SSOProfile is one IAM Identity Center profile extracted from the AWS
// config file. The sso_* fields are nil when the key is absent in the
// source section, so downstream tooling can tell "absent" from "empty".
type SSOProfile struct {
	Profile      string  `json:"profile" yaml:"profile"`
	SSOAccountID *string `json:"sso_account_id" yaml:"sso_account_id"`
	SSORoleName  *string `json:"sso_role_name" yaml:"sso_role_name"`
	SSORegion    *string `json:"sso_region" yaml:"sso_region"`
	SSOStartURL  *string `json:"sso_start_url" yaml:"sso_start_url"`
}

// SectionKind classifies a config file section header
type SectionKind int

const (
	// SectionOther covers everything that is not a credential profile:
	// [sso-session ...] blocks, ini.v1's DEFAULT pseudo-section, etc.
	SectionOther SectionKind = iota
	// SectionDefault is the literal [default] section
	SectionDefault
	// SectionNamedProfile is a [profile <name>] section
	SectionNamedProfile
)

const profileSectionPrefix = "profile "

// ClassifySection applies the AWS config section naming convention and
// returns the profile name for the two profile-shaped kinds.
func ClassifySection(name string) (SectionKind, string) {
	switch {
	case name == "default":
		return SectionDefault, "default"
	case strings.HasPrefix(name, profileSectionPrefix):
		return SectionNamedProfile, strings.TrimPrefix(name, profileSectionPrefix)
	default:
		return SectionOther, ""
	}
}

// ParseSSOProfiles reads the AWS config file and returns every profile
// carrying an sso_start_url key, in file order. configFile may be empty,
// in which case the path is resolved from AWS_CONFIG_FILE or the default
// location. The file is only ever read, never written, so two calls over
// an unchanged file return identical results.
func ParseSSOProfiles(configFile string) ([]SSOProfile, error) {
	path, err := ResolveConfigPath(configFile)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	profiles := make([]SSOProfile, 0)
	for _, section := range cfg.Sections() {
		kind, name := ClassifySection(section.Name())
		if kind == SectionOther {
			continue
		}

		// Presence of sso_start_url marks an SSO profile; plain
		// IAM-credential profiles are filtered out silently.
		if !section.HasKey("sso_start_url") {
			logging.Debug("skipping non-SSO profile", "profile", name)
			continue
		}

		profiles = append(profiles, SSOProfile{
			Profile:      name,
			SSOAccountID: optionalKey(section, "sso_account_id"),
			SSORoleName:  optionalKey(section, "sso_role_name"),
			SSORegion:    optionalKey(section, "sso_region"),
			SSOStartURL:  optionalKey(section, "sso_start_url"),
		})
	}

	logging.Debug("parsed AWS config file", "path", path, "sso_profiles", len(profiles))
	return profiles, nil
}

func optionalKey(section *ini.Section, name string) *string {
	if !section.HasKey(name) {
		return nil
	}
	value := section.Key(name).String()
	return &value
}
