// Package atoms provides the smallest UI building blocks: buttons, badges,
// icons, spinners and avatars.
package atoms
