// SPDX-License-Identifier: EPL-2.0

// Package timeline keeps the media library and slide timeline used to pair
// images and videos with a narration track. It only does bookkeeping; nothing
// here renders video.
package timeline
