package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// GuideFileName is the bundled user guide displayed by the How to Use
// window.
const GuideFileName = "user_guide.txt"

// LocateGuide returns the path of the user guide, checking the executable's
// directory first and the working directory second. The returned error names
// the attempted path so dialogs can show where the file was expected.
func LocateGuide() (string, error) {
	var candidates []string
	if baseDir, err := AppBaseDir(); err == nil {
		candidates = append(candidates, filepath.Join(baseDir, GuideFileName))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, GuideFileName))
	}
	return locateGuideIn(candidates)
}

func locateGuideIn(candidates []string) (string, error) {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	attempted := GuideFileName
	if len(candidates) > 0 {
		attempted = candidates[0]
	}
	return "", fmt.Errorf("user guide not found at %s", attempted)
}

// ReadGuide loads the user guide text. It returns the resolved path along
// with the content so failures can be reported with the attempted location.
func ReadGuide() (content string, path string, err error) {
	path, err = LocateGuide()
	if err != nil {
		return "", path, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", path, fmt.Errorf("failed to read user guide at %s: %w", path, err)
	}
	return string(data), path, nil
}
