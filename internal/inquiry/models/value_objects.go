package models

// Service represents one verification capability that can be requested for a subject.
type Service string

const (
	ServiceIdentity         Service = "identity"
	ServiceCredit           Service = "credit"
	ServiceCriminalQuebec   Service = "criminal_quebec"
	ServiceCriminalCanada   Service = "criminal_canada"
	ServiceOnlineReputation Service = "online_reputation"
)

// AllServices lists every known service tag in canonical order.
var AllServices = []Service{
	ServiceIdentity,
	ServiceCredit,
	ServiceCriminalQuebec,
	ServiceCriminalCanada,
	ServiceOnlineReputation,
}

func (s Service) IsValid() bool {
	switch s {
	case ServiceIdentity, ServiceCredit, ServiceCriminalQuebec, ServiceCriminalCanada, ServiceOnlineReputation:
		return true
	default:
		return false
	}
}

func (s Service) String() string {
	return string(s)
}

// Label returns the human-readable name used by report rendering.
func (s Service) Label() string {
	switch s {
	case ServiceIdentity:
		return "Identity Verification"
	case ServiceCredit:
		return "Credit Check"
	case ServiceCriminalQuebec:
		return "Criminal Record Check (Quebec)"
	case ServiceCriminalCanada:
		return "Criminal Record Check (Canada)"
	case ServiceOnlineReputation:
		return "Online Reputation"
	default:
		return string(s)
	}
}

// HasService reports whether the given service tag is present in the slice.
func HasService(services []Service, target Service) bool {
	for _, s := range services {
		if s == target {
			return true
		}
	}
	return false
}

// Language represents the subject-facing communication language.
type Language string

const (
	LanguageFR Language = "FR"
	LanguageEN Language = "EN"
)

func (l Language) IsValid() bool {
	return l == LanguageFR || l == LanguageEN
}

// NotificationType represents how the subject is notified by the provider.
type NotificationType string

const (
	NotificationSMS   NotificationType = "Sms"
	NotificationEmail NotificationType = "Email"
)

func (n NotificationType) IsValid() bool {
	return n == NotificationSMS || n == NotificationEmail
}

// InquiryStatus represents the lifecycle state of an inquiry as reported by
// the verification provider.
type InquiryStatus string

const (
	StatusPending    InquiryStatus = "Pending"
	StatusInProgress InquiryStatus = "InProgress"
	StatusCompleted  InquiryStatus = "Completed"
	StatusSuspended  InquiryStatus = "Suspended"
	StatusCancelled  InquiryStatus = "Cancelled"
)

func (s InquiryStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusSuspended, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can occur from this status.
func (s InquiryStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusSuspended || s == StatusCancelled
}

// CanTransitionTo checks if a transition from the current status to the target is valid.
// Valid transitions:
// - Pending -> InProgress, Cancelled
// - InProgress -> Completed, Suspended, Cancelled
// Terminal statuses (Completed, Suspended, Cancelled) allow no transitions.
func (s InquiryStatus) CanTransitionTo(target InquiryStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusInProgress || target == StatusCancelled
	case StatusInProgress:
		return target == StatusCompleted || target == StatusSuspended || target == StatusCancelled
	default:
		return false
	}
}

// CreditStatus tracks availability of the credit portion of an inquiry,
// independent of the inquiry lifecycle status.
type CreditStatus string

const (
	CreditNotIncluded CreditStatus = "NotIncluded"
	CreditAvailable   CreditStatus = "Available"
	CreditUnavailable CreditStatus = "Unavailable"
)

func (c CreditStatus) IsValid() bool {
	return c == CreditNotIncluded || c == CreditAvailable || c == CreditUnavailable
}

// DeriveCreditStatus resolves the authoritative credit status from the
// requested service set. Services are the source of truth: when credit was
// never requested the status is NotIncluded regardless of what the provider
// reported, otherwise the reported value wins (defaulting to Unavailable
// when the provider sent nothing usable).
func DeriveCreditStatus(services []Service, reported CreditStatus) CreditStatus {
	if !HasService(services, ServiceCredit) {
		return CreditNotIncluded
	}
	if reported == CreditAvailable || reported == CreditUnavailable {
		return reported
	}
	return CreditUnavailable
}
