package service

import (
	"github.com/reujab/wallpaper"
)

// DesktopWallpaper sets the background through the platform facility
// (gsettings/KDE/XFCE/... on Linux, osascript on macOS, SystemParametersInfo on Windows)
type DesktopWallpaper struct{}

// Ensure DesktopWallpaper implements WallpaperSetter
var _ WallpaperSetter = DesktopWallpaper{}

// SetFromFile sets the desktop background to the image at path
func (DesktopWallpaper) SetFromFile(path string) error {
	return wallpaper.SetFromFile(path)
}
