package service

import (
	"errors"
	"testing"

	"github.com/qamees-next/internal/config"
	"github.com/qamees-next/internal/constants"
)

func TestCaptchaDisabledScenePasses(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Provider: "image"})
	if err := svc.Verify(constants.CaptchaSceneCheckout, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("disabled scene must pass: %v", err)
	}

	var nilSvc *CaptchaService
	if err := nilSvc.Verify(constants.CaptchaSceneCheckout, CaptchaVerifyPayload{}); err != nil {
		t.Fatalf("nil service must pass: %v", err)
	}
}

func TestCaptchaUnknownProviderFallsBackToNone(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{
		Provider: "turnstile",
		Scenes:   config.CaptchaSceneConfig{Checkout: true},
	})
	if svc.SceneEnabled(constants.CaptchaSceneCheckout) {
		t.Fatalf("unknown provider must disable captcha")
	}
	if _, err := svc.GenerateImageChallenge(); !errors.Is(err, ErrCaptchaConfigInvalid) {
		t.Fatalf("expected config invalid, got %v", err)
	}
}

func TestCaptchaImageVerify(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{
		Provider: "image",
		Scenes:   config.CaptchaSceneConfig{Checkout: true},
	})
	if err := svc.Verify(constants.CaptchaSceneCheckout, CaptchaVerifyPayload{}); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("expected captcha required, got %v", err)
	}

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("unexpected challenge: %+v", challenge)
	}
	if err := svc.Verify(constants.CaptchaSceneCheckout, CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: "wrong"}); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("expected captcha invalid, got %v", err)
	}

	challenge, err = svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	answer := svc.imageStore().Get(challenge.CaptchaID, false)
	if err := svc.Verify(constants.CaptchaSceneCheckout, CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: answer}); err != nil {
		t.Fatalf("expected captcha to pass: %v", err)
	}

	public := svc.PublicSetting()
	if public.Provider != "image" || !public.Scenes[constants.CaptchaSceneCheckout] || public.Scenes[constants.CaptchaSceneAdminLogin] {
		t.Fatalf("unexpected public setting: %+v", public)
	}
}
