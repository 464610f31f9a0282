// Package icons defines the icon identifiers used by page components.
//
// Components name icons by stable identifier; the renderer decides how each
// identifier is drawn. The default surface draws Lucide icons by name.
package icons
