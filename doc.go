// Copyright 2026 twystd. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetsd exposes a Google Sheets account as a small HTTP/JSON API.

sheetsd is a thin translation layer - each endpoint maps onto a single Google
Sheets or Drive API call, authenticated with a service account supplied as a
base64-encoded JSON blob in the SERVICE_ACCOUNT_B64 environment variable.

sheetsd serves the following endpoints:

  - GET /spreadsheets, to list the spreadsheets accessible to the service account
  - GET /spreadsheets/{id}/worksheets, to list the worksheets in a spreadsheet
  - GET /spreadsheets/{id}/worksheets/{title}, to read a paginated row range
  - GET /spreadsheets/{id}/worksheets/{title}/export, to download a range as xlsx/csv/tsv
  - GET/PATCH/DELETE .../cell/{addr}, to read, update or clear a single cell
  - GET/PATCH/DELETE .../row/{n}, to read, overwrite or delete a row
  - GET/PATCH/DELETE .../column/{letter}, to read, overwrite or delete a column

Cell deletes clear content in place; row and column deletes are structural
and shift the subsequent rows/columns.
*/
package sheetsd
