// Package complication manages the watch face complication slots: their
// fixed ids, supported data kinds, layout, payloads and renderers.
//
// Three slots exist for the life of an engine. The background slot takes
// a full-surface image; the left and right slots take small ranged values,
// icons, short text or small images. Slots draw back to front and are hit
// tested front to back.
package complication
