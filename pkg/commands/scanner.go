package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spkg/bom"
	"golang.org/x/xerrors"
)

// localizedKeyPattern matches desktop entry lines like "Name[sv]=Fil".
// Group headers like "[Desktop Entry]" don't match because they have no key
// in front of the opening bracket.
var localizedKeyPattern = regexp.MustCompile(`^([A-Za-z0-9-]+)\[([A-Za-z0-9_@.-]+)\]\s*=`)

// Scanner inspects a snap's install tree for translation evidence.
type Scanner struct {
	Log *logrus.Entry

	// ReferenceLocales is the list of locales a fully translated snap is
	// expected to cover.
	ReferenceLocales []string

	// SkipLocaleDirs disables the gettext locale directory sweep for people
	// scanning very large snaps on slow disks.
	SkipLocaleDirs bool
}

// NewScanner returns a Scanner checking coverage against referenceLocales.
func NewScanner(log *logrus.Entry, referenceLocales []string, skipLocaleDirs bool) *Scanner {
	return &Scanner{
		Log:              log,
		ReferenceLocales: referenceLocales,
		SkipLocaleDirs:   skipLocaleDirs,
	}
}

// Scan reads the install tree at installPath and reports which reference
// locales have translated desktop entries there.
//
// A missing install path comes back as an untranslated status together with a
// PathNotFound error, so the caller can decide whether that is worth telling
// the user about. Snaps without desktop files (bases, snapd itself) are a
// normal part of any system.
func (s *Scanner) Scan(installPath string) (TranslationStatus, error) {
	status := TranslationStatus{ScannedAt: time.Now()}
	status.PresentLocales, status.MissingLocales = splitByPresence(s.ReferenceLocales, nil)
	status.Classification = classify(status.PresentLocales, status.MissingLocales)

	if _, err := os.Stat(installPath); err != nil {
		if os.IsNotExist(err) {
			return status, ComplexError{
				Code:    PathNotFound,
				Message: fmt.Sprintf("install path %s does not exist", installPath),
				frame:   xerrors.Caller(1),
			}
		}
		return status, WrapError(err)
	}

	// /snap/<name>/current is a symlink to the active revision directory, and
	// WalkDir treats a symlinked root as a single file rather than descending
	resolvedPath, err := filepath.EvalSymlinks(installPath)
	if err != nil {
		return status, WrapError(err)
	}
	installPath = resolvedPath

	var desktopPaths []string
	localeDirs := map[string]bool{}

	walkErr := filepath.WalkDir(installPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == installPath {
				return err
			}
			// an unreadable corner of the tree shouldn't sink the whole snap
			s.Log.Debugf("skipping unreadable path %s: %v", path, err)
			return nil
		}
		if entry.IsDir() {
			if !s.SkipLocaleDirs && entry.Name() == "LC_MESSAGES" {
				// an empty catalog directory translates nothing
				if entries, readErr := os.ReadDir(path); readErr == nil && len(entries) > 0 {
					localeDirs[filepath.Base(filepath.Dir(path))] = true
				}
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".desktop") {
			desktopPaths = append(desktopPaths, path)
		}
		return nil
	})
	if walkErr != nil {
		return status, WrapError(walkErr)
	}

	present := map[string]bool{}
	discovered := map[string]bool{}

	for _, path := range desktopPaths {
		locales, err := s.localesInDesktopFile(path)
		if err != nil {
			s.Log.Warnf("skipping desktop file %s: %v", path, err)
			continue
		}

		rel, relErr := filepath.Rel(installPath, path)
		if relErr != nil {
			rel = path
		}
		status.DesktopFiles = append(status.DesktopFiles, rel)

		for _, locale := range locales {
			discovered[locale] = true
			present[locale] = true
			// a de_DE translation covers plain de just fine
			if lang := languageOf(locale); lang != locale {
				present[lang] = true
			}
		}
	}

	status.DiscoveredLocales = sortedKeys(discovered)
	status.LocaleDirs = sortedKeys(localeDirs)
	status.PresentLocales, status.MissingLocales = splitByPresence(s.ReferenceLocales, present)
	status.Classification = classify(status.PresentLocales, status.MissingLocales)

	return status, nil
}

// localesInDesktopFile returns the normalized locale codes appearing as
// bracketed key suffixes in the desktop entry at path.
func (s *Scanner) localesInDesktopFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var locales []string
	lines := bufio.NewScanner(bytes.NewReader(bom.Clean(content)))
	for lines.Scan() {
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		match := localizedKeyPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if locale := normalizeLocale(match[2]); locale != "" {
			locales = append(locales, locale)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	return locales, nil
}

// normalizeLocale reduces a desktop entry locale suffix to lang or
// lang_COUNTRY form: sr_RS.UTF-8@latin becomes sr_RS. The encoding and
// modifier parts carry no information about which language is covered.
func normalizeLocale(locale string) string {
	locale = strings.ReplaceAll(locale, "-", "_")
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

// languageOf strips the country part: pt_BR gives pt.
func languageOf(locale string) string {
	if i := strings.IndexByte(locale, '_'); i >= 0 {
		return locale[:i]
	}
	return locale
}

func sortedKeys(set map[string]bool) []string {
	keys := lo.Keys(set)
	sort.Strings(keys)
	return keys
}
