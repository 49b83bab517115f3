// SPDX-License-Identifier: EPL-2.0

// Package manifest loads JSON-lines audio manifests.
//
// A manifest file contains one JSON object per line:
//
//	{"audio_filepath": "noise/babble_01.wav", "duration": 12.4, "offset": 0.0, "label": "babble"}
//	{"audio_filepath": "noise/street.wav", "duration": 30.0, "text": ""}
//
// Required fields are audio_filepath and duration; offset defaults to 0.
// ASR manifests carry "text" and classification manifests carry "label";
// both are accepted and preserved.
//
// A loaded Manifest is immutable and safe to share across goroutines.
// The noise perturbation samples records uniformly from it via Sample.
package manifest
