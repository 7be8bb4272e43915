// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and remediation
// suggestions. The Issue catalog holds Markdown guidance for each class of APEX
// resolution failure, rendered for the terminal with glamour. An ActionableError
// may link one of those issues so its documentation is listed with the message.
package issue
