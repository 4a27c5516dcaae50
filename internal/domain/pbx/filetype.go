package pbx

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultFileType is used for extensions Xcode has no specific tag for.
const DefaultFileType = "file"

// fileTypes maps lower-case extensions to lastKnownFileType tags.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fileTypes = map[string]string{
	".swift":        "sourcecode.swift",
	".m":            "sourcecode.c.objc",
	".mm":           "sourcecode.cpp.objcpp",
	".c":            "sourcecode.c.c",
	".cpp":          "sourcecode.cpp.cpp",
	".h":            "sourcecode.c.h",
	".metal":        "sourcecode.metal",
	".xcprivacy":    "text.xml",
	".xml":          "text.xml",
	".json":         "text.json",
	".txt":          "text",
	".md":           "net.daringfireball.markdown",
	".strings":      "text.plist.strings",
	".plist":        "text.plist.xml",
	".entitlements": "text.plist.entitlements",
	".png":          "image.png",
	".jpg":          "image.jpeg",
	".jpeg":         "image.jpeg",
	".gif":          "image.gif",
	".pdf":          "image.pdf",
	".svg":          "text.svg",
	".mp4":          "file.mp4",
	".mov":          "video.quicktime",
	".mp3":          "audio.mp3",
	".wav":          "audio.wav",
	".ttf":          "file",
	".otf":          "file",
	".storyboard":   "file.storyboard",
	".xib":          "file.xib",
	".xcassets":     "folder.assetcatalog",
	".xcstrings":    "text.json.xcstrings",
	".shortcut":     "file",
}

// InferFileType returns the lastKnownFileType for a file name.
func InferFileType(name string) string {
	if fileType, ok := fileTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return fileType
	}

	return DefaultFileType
}

// InferPhase picks the build phase a file of the given type belongs to.
// Headers are never compiled on their own, so they have no default phase.
func InferPhase(fileType string) (Phase, error) {
	switch {
	case fileType == "sourcecode.c.h":
		return "", fmt.Errorf("%w for %s", ErrUnknownPhase, fileType)
	case strings.HasPrefix(fileType, "sourcecode."):
		return PhaseSources, nil
	default:
		return PhaseResources, nil
	}
}
