package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCredentials is returned for both unknown accounts and wrong passwords.
// The two cases must stay indistinguishable to callers to avoid account enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrForbidden indicates the caller's role or identity does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrPendingApproval indicates credentials were valid but the account has not been
// approved by an admin yet, so no session may be issued.
var ErrPendingApproval = errors.New("account pending admin approval")

// ErrInvalidTransition indicates a workflow precondition was not met, e.g. deciding a
// non-pending application or signing a terminal contract.
var ErrInvalidTransition = errors.New("invalid workflow transition")

// ErrConflict indicates a concurrent update was detected via the entity version check.
var ErrConflict = errors.New("concurrent update conflict")

// ErrPropertyUnavailable indicates the target property is not open for applications.
var ErrPropertyUnavailable = errors.New("property not available")

// ErrDuplicateApplication indicates the customer already has an active application
// (pending or approved) for the property.
var ErrDuplicateApplication = errors.New("active application already exists for property")

// ErrMissingDocuments indicates one or more required document references were absent
// from an application submission.
var ErrMissingDocuments = errors.New("required documents missing")

// ErrNotAssignedRealtor indicates the acting realtor is not the one assigned to the
// application's property.
var ErrNotAssignedRealtor = errors.New("realtor not assigned to property")
