// Package icons defines the icon identifiers used by the UI components.
//
// Components reference icons by ID; the Lucide sprite maps each ID to a
// symbol so themes can swap artwork without touching markup.
package icons
