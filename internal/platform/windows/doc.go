// Package windows provides the Windows platform backend: window enumeration
// through user32 and the blur effect calls into user32 and dwmapi.
// Entry points are resolved at runtime so the binary still starts on OS builds
// that lack them. On other operating systems the package is empty and no
// provider is registered.
package windows
