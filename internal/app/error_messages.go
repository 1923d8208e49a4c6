// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// service layer and the HTTP handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgEmailAlreadyRegistered is returned when a registration or update
	// would give a second user the same email.
	MsgEmailAlreadyRegistered = "El email ya está registrado"

	// MsgUsernameAlreadyRegistered is returned when a registration or update
	// would give a second user the same username.
	MsgUsernameAlreadyRegistered = "El nombre de usuario ya está registrado"

	// MsgInvalidCredentials is returned for every failed login, whether the
	// username is unknown or the password is wrong.
	MsgInvalidCredentials = "Credenciales inválidas"

	// MsgUserNotFoundWithID is the format of the message returned when no
	// user has the requested id.
	MsgUserNotFoundWithID = "Usuario no encontrado con id: %d"

	// MsgValidationFailed is the error title of a 400 response carrying
	// per-field violations.
	MsgValidationFailed = "Error de validación"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a path parameter is malformed.
	MsgInvalidDataProvided = "Datos de entrada inválidos"

	// MsgInternalServerError is the error title of every 500 response.
	MsgInternalServerError = "Error interno del servidor"

	// MsgUnexpectedProblem is the message of every 500 response. Details stay
	// in the server log.
	MsgUnexpectedProblem = "Ha ocurrido un problema inesperado. Por favor, intente más tarde."

	// MsgRouteNotFound is the error title of a 404 for an unknown route.
	MsgRouteNotFound = "Ruta no encontrada"

	// MsgRequestedURLNotFound is the format of the message of a 404 for an
	// unknown route.
	MsgRequestedURLNotFound = "La URL solicitada no existe: %s"
)
