// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*

Package rendering writes register API responses.

Plain text bodies go through go-chi/render so the status stored on the
request with render.Status is honored. JSON bodies are always rendered
as application/json regardless of the "Accept" header.

*/
package rendering
